package list_reviews

import (
	"context"

	"github.com/beautyline/salon-service/internal/service/reviews/models"
)

type ReviewsService interface {
	List(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

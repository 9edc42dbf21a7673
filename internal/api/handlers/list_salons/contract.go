package list_salons

import (
	"context"

	"github.com/beautyline/salon-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListSalons(ctx context.Context, req *models.ListSalonsRequest) (*models.SalonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_salon

import (
	"context"

	"github.com/beautyline/salon-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetSalon(ctx context.Context, req *models.GetSalonRequest) (*models.SalonDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package catalog

import (
	"context"

	"github.com/beautyline/salon-service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	List(ctx context.Context, filter domain.SalonsFilter) ([]*domain.Salon, error)
}

// SpecialistRepository интерфейс репозитория мастеров
type SpecialistRepository interface {
	ListBySalon(ctx context.Context, salonID int64) ([]*domain.Specialist, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListBySalon(ctx context.Context, salonID int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"context"

	"github.com/beautyline/salon-service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	UpdateWorkingHours(ctx context.Context, id int64, hours domain.WeekSchedule) error
}

// SpecialistRepository интерфейс репозитория мастеров
type SpecialistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialist, error)
	UpdateWorkingHours(ctx context.Context, id int64, hours *domain.WeekSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

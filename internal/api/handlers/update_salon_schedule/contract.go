package update_salon_schedule

import (
	"context"

	"github.com/beautyline/salon-service/internal/domain"
)

type ScheduleService interface {
	UpdateSalonWorkingHours(ctx context.Context, salonID int64, actorID int64, isAdmin bool, hours domain.WeekSchedule) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

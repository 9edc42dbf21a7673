package update_specialist_schedule

import (
	"context"

	"github.com/beautyline/salon-service/internal/domain"
)

type ScheduleService interface {
	UpdateSpecialistWorkingHours(ctx context.Context, salonID, specialistID int64, actorID int64, isAdmin bool, hours *domain.WeekSchedule) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

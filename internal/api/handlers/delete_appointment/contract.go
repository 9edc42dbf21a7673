package delete_appointment

import "context"

type AppointmentsService interface {
	Delete(ctx context.Context, appointmentID int64, actorID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_appointment

import (
	"fmt"
	"time"

	"github.com/beautyline/salon-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.ServiceID == nil && req.StartTime == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartTime != nil && req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime must not be empty", ErrInvalidInput)
	}

	return nil
}

// validateAccess проверяет право изменять запись:
// владелец записи, владелец салона или администратор
func validateAccess(req *Request, appointment *domain.Appointment, salon *domain.Salon) error {
	if req.IsAdmin {
		return nil
	}
	if appointment.IsOwnedBy(req.ActorID) {
		return nil
	}
	if salon.IsOwnedBy(req.ActorID) {
		return nil
	}
	return ErrPermissionDenied
}

// validateTiming проверяет время начала относительно "сейчас":
// минимальный отступ и горизонт бронирования
func validateTiming(start, now time.Time, minLeadMinutes, advanceBookingDays int) error {
	if !start.After(now) {
		return ErrStartInPast
	}

	minStart := now.Add(time.Duration(minLeadMinutes) * time.Minute)
	if !start.After(minStart) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minLeadMinutes)
	}

	// advanceBookingDays == 0 означает отсутствие ограничения
	if advanceBookingDays > 0 {
		maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, advanceBookingDays)
		startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
		if startDate.After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
		}
	}

	return nil
}

// validateWithinWorkingHours проверяет, что интервал записи целиком помещается
// в рабочее окно мастера (персональное расписание или часы салона)
func validateWithinWorkingHours(start, end time.Time, salon *domain.Salon, specialist *domain.Specialist) error {
	loc := salon.Location()
	localStart := start.In(loc)

	day := domain.ResolveDaySchedule(specialist.WorkingHours, salon.WorkingHours, localStart.Weekday())
	open, ok := day.OpenIntervalOn(localStart, loc)
	if !ok {
		return fmt.Errorf("%w: specialist is not working on %s", ErrOutsideWorkingHours, localStart.Weekday())
	}

	if !open.Contains(domain.TimeInterval{Start: start, End: end}) {
		return ErrOutsideWorkingHours
	}

	return nil
}

package create_appointment

import (
	"fmt"
	"time"

	"github.com/beautyline/salon-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.AsGuest {
		// Гостевой записи нужны контакты, иначе с клиентом не связаться
		if req.ClientName == nil || *req.ClientName == "" {
			return fmt.Errorf("%w: clientName is required for guest appointments", ErrInvalidInput)
		}
		if req.ClientPhone == nil || *req.ClientPhone == "" {
			return fmt.Errorf("%w: clientPhone is required for guest appointments", ErrInvalidInput)
		}
		if len(*req.ClientName) > domain.MaxClientNameLength {
			return fmt.Errorf("%w: clientName must be at most %d characters",
				ErrInvalidInput, domain.MaxClientNameLength)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateEntities проверяет согласованность салона, мастера и услуги
func validateEntities(salon *domain.Salon, specialist *domain.Specialist, service *domain.Service) error {
	// Мастер и услуга чужого салона для клиента неотличимы от несуществующих
	if specialist.SalonID != salon.ID {
		return ErrSpecialistNotFound
	}
	if service.SalonID != salon.ID {
		return ErrServiceNotFound
	}
	if !specialist.PerformsService(service.ID) {
		return ErrServiceNotProvided
	}
	if !salon.Active {
		return ErrSalonInactive
	}
	return nil
}

// validateGuestPermission проверяет право создавать гостевую запись:
// только владелец салона или администратор
func validateGuestPermission(req *Request, salon *domain.Salon) error {
	if !req.AsGuest {
		return nil
	}
	if req.IsAdmin || salon.IsOwnedBy(req.ActorID) {
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

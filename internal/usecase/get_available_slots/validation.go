package get_available_slots

import (
	"fmt"

	"github.com/beautyline/salon-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GranularityMinutes != 0 {
		if req.GranularityMinutes < domain.MinGranularityMinutes ||
			req.GranularityMinutes > domain.MaxGranularityMinutes {
			return fmt.Errorf("%w: granularity must be between %d and %d minutes",
				ErrInvalidInput, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
		}
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
	return nil
}

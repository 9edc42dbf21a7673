package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/beautyline/salon-service/internal/domain"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	specialiststorage "github.com/beautyline/salon-service/internal/infra/storage/specialist"
)

// Service сервис для управления рабочими часами салонов и мастеров
// Расписание валидируется на записи: чтение никогда не должно спотыкаться
// о некорректные данные
type Service struct {
	salonRepo      SalonRepository
	specialistRepo SpecialistRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	salonRepo SalonRepository,
	specialistRepo SpecialistRepository,
	logger Logger,
) *Service {
	return &Service{
		salonRepo:      salonRepo,
		specialistRepo: specialistRepo,
		logger:         logger,
	}
}

// UpdateSalonWorkingHours обновляет рабочие часы салона
// Доступно владельцу салона и администратору
func (s *Service) UpdateSalonWorkingHours(ctx context.Context, salonID int64, actorID int64, isAdmin bool, hours domain.WeekSchedule) error {
	s.logger.Info("UpdateSalonWorkingHours: salon=%d, actor=%d", salonID, actorID)

	if err := hours.Validate(); err != nil {
		s.logger.Warn("UpdateSalonWorkingHours: invalid schedule for salon=%d: %v", salonID, err)
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			s.logger.Warn("UpdateSalonWorkingHours: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("UpdateSalonWorkingHours: repository error for salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: UpdateSalonWorkingHours - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && !salon.IsOwnedBy(actorID) {
		s.logger.Warn("UpdateSalonWorkingHours: user=%d is not the owner of salon=%d", actorID, salonID)
		return ErrAccessDenied
	}

	if err := s.salonRepo.UpdateWorkingHours(ctx, salonID, hours); err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			return ErrSalonNotFound
		}
		s.logger.Error("UpdateSalonWorkingHours: failed to update salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: UpdateSalonWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSalonWorkingHours: successfully updated salon id=%d", salonID)
	return nil
}

// UpdateSpecialistWorkingHours обновляет персональное расписание мастера
// nil сбрасывает персональное расписание, мастер возвращается к часам салона
// Доступно владельцу салона и администратору
func (s *Service) UpdateSpecialistWorkingHours(ctx context.Context, salonID, specialistID int64, actorID int64, isAdmin bool, hours *domain.WeekSchedule) error {
	s.logger.Info("UpdateSpecialistWorkingHours: salon=%d, specialist=%d, actor=%d",
		salonID, specialistID, actorID)

	if hours != nil {
		if err := hours.Validate(); err != nil {
			s.logger.Warn("UpdateSpecialistWorkingHours: invalid schedule for specialist=%d: %v",
				specialistID, err)
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
	}

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			s.logger.Warn("UpdateSpecialistWorkingHours: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("UpdateSpecialistWorkingHours: repository error for salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: UpdateSpecialistWorkingHours - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && !salon.IsOwnedBy(actorID) {
		s.logger.Warn("UpdateSpecialistWorkingHours: user=%d is not the owner of salon=%d", actorID, salonID)
		return ErrAccessDenied
	}

	specialist, err := s.specialistRepo.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, specialiststorage.ErrSpecialistNotFound) {
			s.logger.Warn("UpdateSpecialistWorkingHours: specialist id=%d not found", specialistID)
			return ErrSpecialistNotFound
		}
		s.logger.Error("UpdateSpecialistWorkingHours: repository error for specialist id=%d: %v", specialistID, err)
		return fmt.Errorf("%w: UpdateSpecialistWorkingHours - repository error: %v", ErrInternal, err)
	}

	// Мастер чужого салона неотличим от несуществующего
	if specialist.SalonID != salonID {
		s.logger.Warn("UpdateSpecialistWorkingHours: specialist id=%d does not belong to salon=%d",
			specialistID, salonID)
		return ErrSpecialistNotFound
	}

	if err := s.specialistRepo.UpdateWorkingHours(ctx, specialistID, hours); err != nil {
		if errors.Is(err, specialiststorage.ErrSpecialistNotFound) {
			return ErrSpecialistNotFound
		}
		s.logger.Error("UpdateSpecialistWorkingHours: failed to update specialist id=%d: %v", specialistID, err)
		return fmt.Errorf("%w: UpdateSpecialistWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSpecialistWorkingHours: successfully updated specialist id=%d", specialistID)
	return nil
}

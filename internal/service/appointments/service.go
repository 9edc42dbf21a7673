package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/beautyline/salon-service/internal/domain"
	appointmentstorage "github.com/beautyline/salon-service/internal/infra/storage/appointment"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	"github.com/beautyline/salon-service/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - запись видят ее владелец, владелец салона и администратор
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for actor=%d", id, actorID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkAppointmentAccess(ctx, appointment, actorID, isAdmin); err != nil {
		s.logger.Warn("GetByID: access denied for actor=%d to appointment id=%d", actorID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю записей пользователя
// Пользователь видит только свои записи, администратор - любые
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, actor=%d, status=%v",
		req.UserID, req.ActorID, req.Status)

	if req.UserID != req.ActorID && !req.IsAdmin {
		s.logger.Warn("GetUserAppointments: actor=%d is not allowed to view appointments of user=%d",
			req.ActorID, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d",
		len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetSalonAppointments получает записи салона с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, периоду, статусу и включению отмененных записей
// Доступно владельцу салона и администратору
func (s *Service) GetSalonAppointments(ctx context.Context, req *models.GetSalonAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetSalonAppointments: fetching appointments for salon=%d, actor=%d",
		req.SalonID, req.ActorID)

	// Проверяем права доступа владельца
	if err := s.checkSalonAccess(ctx, req.SalonID, req.ActorID, req.IsAdmin); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSalonAppointments: invalid filter for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSalonAppointments: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalonAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonAppointments: successfully fetched %d appointments for salon=%d",
		len(appointments), req.SalonID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Отменить могут владелец записи, владелец салона и администратор
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by actor=%d", appointmentID, req.ActorID)

	// Получаем запись
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkAppointmentAccess(ctx, appointment, req.ActorID, req.IsAdmin); err != nil {
		s.logger.Warn("Cancel: access denied for actor=%d to appointment id=%d", req.ActorID, appointmentID)
		return err
	}

	// Проверяем, можно ли отменить запись
	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	// Отменяем запись
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус записи (подтверждение, завершение)
// Доступно владельцу салона и администратору; отмена идет через Cancel
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by actor=%d",
		appointmentID, req.Status, req.ActorID)

	// Получаем запись
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только владелец салона или администратор)
	if err := s.checkSalonAccess(ctx, appointment.SalonID, req.ActorID, req.IsAdmin); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return ErrInvalidStatus
	}

	// Отмена идет через Cancel с указанием причины
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation of appointment id=%d must go through Cancel", appointmentID)
		return ErrInvalidStatus
	}

	// Проверяем допустимость перехода
	if !appointment.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appointment.Status, newStatus, appointmentID)
		return ErrInvalidTransition
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Delete мягко удаляет запись
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, appointmentID int64, actorID int64, isAdmin bool) error {
	s.logger.Info("Delete: deleting appointment id=%d by actor=%d", appointmentID, actorID)

	if !isAdmin {
		s.logger.Warn("Delete: actor=%d is not an admin", actorID)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.SoftDelete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", appointmentID)
	return nil
}

// Вспомогательные методы

// checkAppointmentAccess проверяет, что пользователь имеет доступ к записи
// Запись видят ее владелец, владелец салона и администратор
func (s *Service) checkAppointmentAccess(ctx context.Context, appointment *domain.Appointment, actorID int64, isAdmin bool) error {
	if isAdmin {
		return nil
	}

	// Если пользователь владелец записи - доступ разрешен
	if appointment.IsOwnedBy(actorID) {
		return nil
	}

	// Проверяем, является ли пользователь владельцем салона
	if err := s.checkSalonAccess(ctx, appointment.SalonID, actorID, false); err != nil {
		// Ошибка уже залогирована в checkSalonAccess
		return ErrAccessDenied
	}

	return nil
}

// checkSalonAccess проверяет, что пользователь является владельцем салона
func (s *Service) checkSalonAccess(ctx context.Context, salonID int64, actorID int64, isAdmin bool) error {
	if isAdmin {
		return nil
	}

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			s.logger.Warn("checkSalonAccess: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("checkSalonAccess: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: checkSalonAccess - failed to get salon: %v", ErrInternal, err)
	}

	if !salon.IsOwnedBy(actorID) {
		s.logger.Warn("checkSalonAccess: user=%d is not the owner of salon=%d", actorID, salonID)
		return ErrAccessDenied
	}

	return nil
}

package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/beautyline/salon-service/internal/config"
	"github.com/beautyline/salon-service/internal/domain"
	appointmentstorage "github.com/beautyline/salon-service/internal/infra/storage/appointment"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	servicestorage "github.com/beautyline/salon-service/internal/infra/storage/service"
	specialiststorage "github.com/beautyline/salon-service/internal/infra/storage/specialist"
)

// UseCase use case для переноса записи на другое время и/или услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	specialistRepo  SpecialistRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	booking         config.BookingConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	specialistRepo SpecialistRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	booking config.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		specialistRepo:  specialistRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		booking:         booking,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения записи
// Новый интервал проверяется на пересечения в сериализуемой транзакции,
// сама запись исключается из проверки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%d, actor=%d", req.AppointmentID, req.ActorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем запись
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Получаем салон и мастера записи
	salon, err := uc.salonRepo.GetByID(ctx, appointment.SalonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			uc.logger.Warn("UpdateAppointment: salon id=%d not found", appointment.SalonID)
			return nil, fmt.Errorf("%w: salon is gone", ErrInternal)
		}
		uc.logger.Error("UpdateAppointment: failed to get salon id=%d: %v", appointment.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	specialist, err := uc.specialistRepo.GetByID(ctx, appointment.SpecialistID)
	if err != nil {
		if errors.Is(err, specialiststorage.ErrSpecialistNotFound) {
			uc.logger.Warn("UpdateAppointment: specialist id=%d not found", appointment.SpecialistID)
			return nil, fmt.Errorf("%w: specialist is gone", ErrInternal)
		}
		uc.logger.Error("UpdateAppointment: failed to get specialist id=%d: %v", appointment.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	// 5. Проверяем права доступа
	if err := validateAccess(req, appointment, salon); err != nil {
		uc.logger.Warn("UpdateAppointment: access denied for actor=%d to appointment id=%d",
			req.ActorID, req.AppointmentID)
		return nil, err
	}

	// 6. Запись должна допускать изменение
	if !appointment.CanBeRescheduled() {
		uc.logger.Warn("UpdateAppointment: appointment id=%d has status=%s and cannot be edited",
			req.AppointmentID, appointment.Status)
		return nil, ErrNotReschedulable
	}

	// 7. Определяем целевую услугу
	serviceID := appointment.ServiceID
	if req.ServiceID != nil {
		serviceID = *req.ServiceID
	}

	service, err := uc.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			uc.logger.Warn("UpdateAppointment: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.SalonID != salon.ID {
		return nil, ErrServiceNotFound
	}
	if !specialist.PerformsService(service.ID) {
		return nil, ErrServiceNotProvided
	}

	// 8. Вычисляем новый интервал
	start := appointment.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := start.Add(service.Duration())

	// Цена фиксируется заново только при смене услуги;
	// перенос по времени не трогает исторический снимок
	price := appointment.Price
	if serviceID != appointment.ServiceID {
		price = service.EffectivePrice()
	}

	// 9. Проверяем время и рабочие часы
	if err := validateTiming(start, now, uc.booking.MinLeadTimeMinutes, uc.booking.AdvanceBookingDays); err != nil {
		uc.logger.Warn("UpdateAppointment: timing validation failed: %v", err)
		return nil, err
	}

	if err := validateWithinWorkingHours(start, end, salon, specialist); err != nil {
		uc.logger.Warn("UpdateAppointment: working hours validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 10. Проверка пересечений и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Получаем пересекающиеся записи с блокировкой, исключая саму запись
		overlapping, err := uc.appointmentRepo.GetOverlapping(txCtx, appointment.SpecialistID, start, end, &appointment.ID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to get overlapping appointments: %v", ErrInternal, err)
		}

		for _, appt := range overlapping {
			if appt.IsActive() && appt.Interval().Overlaps(domain.TimeInterval{Start: start, End: end}) {
				uc.logger.Warn("UpdateAppointment: slot taken by appointment id=%d", appt.ID)
				return ErrSlotTaken
			}
		}

		// 10.2. Переносим запись
		if err := uc.appointmentRepo.Reschedule(txCtx, appointment.ID, serviceID, start, end, price); err != nil {
			if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to reschedule appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
		}

		// 10.3. Перечитываем запись для ответа
		updated, err := uc.appointmentRepo.GetByID(txCtx, appointment.ID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to reread appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to reread appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		SalonID:      result.SalonID,
		SpecialistID: result.SpecialistID,
		ServiceID:    result.ServiceID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		Price:        result.Price,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

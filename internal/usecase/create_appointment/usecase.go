package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/beautyline/salon-service/internal/config"
	"github.com/beautyline/salon-service/internal/domain"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	servicestorage "github.com/beautyline/salon-service/internal/infra/storage/service"
	specialiststorage "github.com/beautyline/salon-service/internal/infra/storage/specialist"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка пересечений и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: actor=%d, salon=%d, specialist=%d, service=%d, start=%s",
		req.ActorID, req.SalonID, req.SpecialistID, req.ServiceID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон, мастера и услугу
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	specialist, err := uc.specialistRepo.GetByID(ctx, req.SpecialistID)
	if err != nil {
		if errors.Is(err, specialiststorage.ErrSpecialistNotFound) {
			uc.logger.Warn("CreateAppointment: specialist id=%d not found", req.SpecialistID)
			return nil, ErrSpecialistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get specialist id=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем согласованность сущностей
	if err := validateEntities(salon, specialist, service); err != nil {
		uc.logger.Warn("CreateAppointment: entity validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем право на гостевую запись
	if err := validateGuestPermission(req, salon); err != nil {
		uc.logger.Warn("CreateAppointment: actor=%d is not allowed to create guest appointments in salon=%d",
			req.ActorID, req.SalonID)
		return nil, err
	}

	// 6. Вычисляем интервал записи и фиксируем цену
	start := req.StartTime
	end := start.Add(service.Duration())
	price := service.EffectivePrice()

	// 7. Проверяем время: не в прошлом, минимальный отступ, горизонт
	if err := validateTiming(start, now, uc.booking.MinLeadTimeMinutes, uc.booking.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateAppointment: timing validation failed: %v", err)
		return nil, err
	}

	// 8. Проверяем, что запись помещается в рабочие часы
	if err := validateWithinWorkingHours(start, end, salon, specialist); err != nil {
		uc.logger.Warn("CreateAppointment: working hours validation failed: %v", err)
		return nil, err
	}

	var userID *int64
	if !req.AsGuest {
		actorID := req.ActorID
		userID = &actorID
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 9. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Получаем пересекающиеся записи с блокировкой (FOR UPDATE)
		overlapping, err := uc.appointmentRepo.GetOverlapping(txCtx, req.SpecialistID, start, end, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to get overlapping appointments: %v", ErrInternal, err)
		}

		// 9.2. Любое пересечение с активной записью делает слот недоступным
		for _, appt := range overlapping {
			if appt.IsActive() && appt.Interval().Overlaps(domain.TimeInterval{Start: start, End: end}) {
				uc.logger.Warn("CreateAppointment: slot taken by appointment id=%d", appt.ID)
				return ErrSlotTaken
			}
		}

		// 9.3. Создаем запись со статусом pending
		appointment := &domain.Appointment{
			UserID:       userID,
			SalonID:      req.SalonID,
			SpecialistID: req.SpecialistID,
			ServiceID:    req.ServiceID,
			StartTime:    start,
			EndTime:      end,
			Status:       domain.StatusPending,
			Price:        price,
			Notes:        req.Notes,
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			ClientEmail:  req.ClientEmail,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

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
		ClientName:   result.ClientName,
		ClientPhone:  result.ClientPhone,
		ClientEmail:  result.ClientEmail,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

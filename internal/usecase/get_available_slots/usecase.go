package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beautyline/salon-service/internal/config"
	"github.com/beautyline/salon-service/internal/domain"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	servicestorage "github.com/beautyline/salon-service/internal/infra/storage/service"
	specialiststorage "github.com/beautyline/salon-service/internal/infra/storage/specialist"
)

// UseCase use case для получения доступных слотов для записи
//
// Алгоритм: рабочие окна дня (персональное расписание мастера или часы
// салона) минус занятые интервалы активных записей; внутри свободных окон
// кандидаты перечисляются с шагом granularity
type UseCase struct {
	salonRepo       SalonRepository
	specialistRepo  SpecialistRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	booking         config.BookingConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	specialistRepo SpecialistRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	booking config.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		specialistRepo:  specialistRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		booking:         booking,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Отсутствие доступных слотов (выходной, прошедшая дата, все занято,
// дата за горизонтом бронирования) - нормальный результат, не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, specialist=%d, service=%d, date=%s",
		req.SalonID, req.SpecialistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон, мастера и услугу
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	specialist, err := uc.specialistRepo.GetByID(ctx, req.SpecialistID)
	if err != nil {
		if errors.Is(err, specialiststorage.ErrSpecialistNotFound) {
			uc.logger.Warn("GetAvailableSlots: specialist id=%d not found", req.SpecialistID)
			return nil, ErrSpecialistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get specialist id=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем согласованность сущностей
	if err := validateEntities(salon, specialist, service); err != nil {
		uc.logger.Warn("GetAvailableSlots: entity validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		SalonID:         req.SalonID,
		SpecialistID:    req.SpecialistID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           []time.Time{},
	}

	// 5. Дата за горизонтом бронирования - пустой результат
	if beyondHorizon(req.Date, now, uc.booking.AdvanceBookingDays) {
		uc.logger.Info("GetAvailableSlots: date %s is beyond booking horizon (%d days)",
			req.Date.Format(domain.DateFormat), uc.booking.AdvanceBookingDays)
		return response, nil
	}

	// 6. Разрешаем расписание на день: мастер -> салон -> выходной
	loc := salon.Location()
	day := domain.ResolveDaySchedule(specialist.WorkingHours, salon.WorkingHours, req.Date.Weekday())

	if scheduleMisconfigured(day) {
		// Битое расписание деградирует до выходного и не валит запрос
		uc.logger.Warn("GetAvailableSlots: malformed schedule for specialist=%d on %s, treating as closed",
			req.SpecialistID, req.Date.Weekday())
	}

	open, ok := day.OpenIntervalOn(req.Date, loc)
	if !ok {
		uc.logger.Info("GetAvailableSlots: specialist=%d is not working on %s",
			req.SpecialistID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 7. Получаем занятые интервалы за день
	dayStart, dayEnd := dayBounds(req.Date, loc)
	appointments, err := uc.appointmentRepo.GetOverlapping(ctx, req.SpecialistID, dayStart, dayEnd, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Свободные окна = рабочие окна минус занятые интервалы
	free := domain.SubtractIntervals([]domain.TimeInterval{open}, busyIntervals(appointments))

	// 9. Перечисляем слоты с учетом минимального отступа от "сейчас"
	granularity := uc.booking.GranularityMinutes
	if req.GranularityMinutes != 0 {
		granularity = req.GranularityMinutes
	}
	minStart := now.Add(time.Duration(uc.booking.MinLeadTimeMinutes) * time.Minute)

	response.Slots = generateSlots(
		free,
		service.Duration(),
		time.Duration(granularity)*time.Minute,
		minStart,
	)

	uc.logger.Info("GetAvailableSlots: %d slots for salon=%d, specialist=%d, service=%d, date=%s",
		len(response.Slots), req.SalonID, req.SpecialistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return response, nil
}

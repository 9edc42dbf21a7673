package create_appointment

import (
	"errors"
	"net/http"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/api/middleware"
	createAppointment "github.com/beautyline/salon-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC 3339"
	msgUnauthorized        = "требуется аутентификация"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgSalonNotFound       = "салон не найден"
	msgSpecialistNotFound  = "мастер не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotProvided  = "мастер не выполняет эту услугу"
	msgSalonInactive       = "салон не принимает записи"
	msgStartInPast         = "время начала уже прошло"
	msgTooLateToBook       = "слишком поздно для записи на это время"
	msgDateTooFar          = "дата записи слишком далеко в будущем"
	msgOutsideWorkingHours = "запись не помещается в рабочие часы"
	msgGuestNotAllowed     = "гостевые записи может создавать только владелец салона"
	msgInvalidInput        = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	isAdmin := middleware.IsAdmin(r.Context())

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID, isAdmin)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondUnprocessable(w, msgInvalidStartTime, map[string]string{"startTime": msgInvalidStartTime})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: actor=%d, specialist_id=%d", actorID, req.SpecialistID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSalonNotFound):
			h.logger.Warn("POST /appointments - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createAppointment.ErrSpecialistNotFound):
			h.logger.Warn("POST /appointments - Specialist not found: specialist_id=%d", req.SpecialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotProvided):
			h.logger.Warn("POST /appointments - Service not provided: specialist_id=%d, service_id=%d",
				req.SpecialistID, req.ServiceID)
			handlers.RespondUnprocessable(w, msgServiceNotProvided, map[string]string{"serviceId": msgServiceNotProvided})

		case errors.Is(err, createAppointment.ErrSalonInactive):
			h.logger.Warn("POST /appointments - Salon inactive: salon_id=%d", req.SalonID)
			handlers.RespondUnprocessable(w, msgSalonInactive, map[string]string{"salonId": msgSalonInactive})

		case errors.Is(err, createAppointment.ErrStartInPast):
			h.logger.Warn("POST /appointments - Start in past: actor=%d", actorID)
			handlers.RespondUnprocessable(w, msgStartInPast, map[string]string{"startTime": msgStartInPast})

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: actor=%d", actorID)
			handlers.RespondUnprocessable(w, msgTooLateToBook, map[string]string{"startTime": msgTooLateToBook})

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: actor=%d", actorID)
			handlers.RespondUnprocessable(w, msgDateTooFar, map[string]string{"startTime": msgDateTooFar})

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: actor=%d, specialist_id=%d",
				actorID, req.SpecialistID)
			handlers.RespondUnprocessable(w, msgOutsideWorkingHours, map[string]string{"startTime": msgOutsideWorkingHours})

		case errors.Is(err, createAppointment.ErrPermissionDenied):
			h.logger.Warn("POST /appointments - Guest booking not allowed: actor=%d, salon_id=%d",
				actorID, req.SalonID)
			handlers.RespondForbidden(w, msgGuestNotAllowed)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInput, nil)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: actor=%d, salon_id=%d, error=%v",
				actorID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, actor=%d, salon_id=%d",
		result.ID, actorID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

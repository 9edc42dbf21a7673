package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/api/middleware"
	updateAppointment "github.com/beautyline/salon-service/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgInvalidStartTime     = "некорректный формат времени начала, ожидается RFC 3339"
	msgUnauthorized         = "требуется аутентификация"
	msgAppointmentNotFound  = "запись не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceNotProvided   = "мастер не выполняет эту услугу"
	msgNotReschedulable     = "запись уже нельзя изменить"
	msgSlotTaken            = "выбранный временной слот уже занят"
	msgStartInPast          = "время начала уже прошло"
	msgTooLateToBook        = "слишком поздно для записи на это время"
	msgDateTooFar           = "дата записи слишком далеко в будущем"
	msgOutsideWorkingHours  = "запись не помещается в рабочие часы"
	msgAccessDenied         = "нет доступа к этой записи"
	msgInvalidInput         = "некорректные данные записи"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	isAdmin := middleware.IsAdmin(r.Context())

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, actorID, isAdmin)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse start time: %v", err)
		handlers.RespondUnprocessable(w, msgInvalidStartTime, map[string]string{"startTime": msgInvalidStartTime})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrSlotTaken):
			h.logger.Warn("PUT /appointments/{id} - Slot taken: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotProvided):
			h.logger.Warn("PUT /appointments/{id} - Service not provided: appointment_id=%d", appointmentID)
			handlers.RespondUnprocessable(w, msgServiceNotProvided, map[string]string{"serviceId": msgServiceNotProvided})

		case errors.Is(err, updateAppointment.ErrNotReschedulable):
			h.logger.Warn("PUT /appointments/{id} - Not reschedulable: appointment_id=%d", appointmentID)
			handlers.RespondUnprocessable(w, msgNotReschedulable, nil)

		case errors.Is(err, updateAppointment.ErrStartInPast):
			handlers.RespondUnprocessable(w, msgStartInPast, map[string]string{"startTime": msgStartInPast})

		case errors.Is(err, updateAppointment.ErrTooLateToBook):
			handlers.RespondUnprocessable(w, msgTooLateToBook, map[string]string{"startTime": msgTooLateToBook})

		case errors.Is(err, updateAppointment.ErrDateTooFarInFuture):
			handlers.RespondUnprocessable(w, msgDateTooFar, map[string]string{"startTime": msgDateTooFar})

		case errors.Is(err, updateAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("PUT /appointments/{id} - Outside working hours: appointment_id=%d", appointmentID)
			handlers.RespondUnprocessable(w, msgOutsideWorkingHours, map[string]string{"startTime": msgOutsideWorkingHours})

		case errors.Is(err, updateAppointment.ErrPermissionDenied):
			h.logger.Warn("PUT /appointments/{id} - Access denied: appointment_id=%d, actor=%d", appointmentID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInput, nil)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d, actor=%d",
		appointmentID, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

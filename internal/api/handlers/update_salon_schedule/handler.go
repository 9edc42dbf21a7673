package update_salon_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/api/middleware"
	"github.com/beautyline/salon-service/internal/domain"
	"github.com/beautyline/salon-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSalonID     = "некорректный идентификатор салона"
	msgUnauthorized       = "требуется аутентификация"
	msgSalonNotFound      = "салон не найден"
	msgAccessDenied       = "нет доступа к расписанию этого салона"
	msgInvalidSchedule    = "некорректное расписание"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	WorkingHours domain.WeekSchedule `json:"workingHours"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	isAdmin := middleware.IsAdmin(r.Context())

	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{salonId}/working-hours - Invalid salon id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{salonId}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateSalonWorkingHours(r.Context(), salonID, actorID, isAdmin, req.WorkingHours); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{salonId}/working-hours - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{salonId}/working-hours - Access denied: salon_id=%d, actor=%d",
				salonID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /salons/{salonId}/working-hours - Invalid schedule: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule, map[string]string{"workingHours": err.Error()})

		default:
			h.logger.Error("PUT /salons/{salonId}/working-hours - Failed to update schedule: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{salonId}/working-hours - Schedule updated successfully: salon_id=%d, actor=%d",
		salonID, actorID)
	w.WriteHeader(http.StatusNoContent)
}

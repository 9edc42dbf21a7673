package update_specialist_schedule

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
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSalonID      = "некорректный идентификатор салона"
	msgInvalidSpecialistID = "некорректный идентификатор мастера"
	msgUnauthorized        = "требуется аутентификация"
	msgSalonNotFound       = "салон не найден"
	msgSpecialistNotFound  = "мастер не найден"
	msgAccessDenied        = "нет доступа к расписанию этого салона"
	msgInvalidSchedule     = "некорректное расписание"
)

// UpdateScheduleRequest HTTP request model
// workingHours = null сбрасывает персональное расписание мастера
type UpdateScheduleRequest struct {
	WorkingHours *domain.WeekSchedule `json:"workingHours"`
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

// Handle PUT /api/v1/salons/{salonId}/specialists/{specialistId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	isAdmin := middleware.IsAdmin(r.Context())

	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Invalid salon id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	specialistID, err := strconv.ParseInt(vars["specialistId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Invalid specialist id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateSpecialistWorkingHours(r.Context(), salonID, specialistID, actorID, isAdmin, req.WorkingHours)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, schedule.ErrSpecialistNotFound):
			h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Specialist not found: specialist_id=%d",
				specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Access denied: salon_id=%d, actor=%d",
				salonID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /specialists/{specialistId}/working-hours - Invalid schedule: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule, map[string]string{"workingHours": err.Error()})

		default:
			h.logger.Error("PUT /specialists/{specialistId}/working-hours - Failed to update schedule: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /specialists/{specialistId}/working-hours - Schedule updated successfully: specialist_id=%d, actor=%d",
		specialistID, actorID)
	w.WriteHeader(http.StatusNoContent)
}

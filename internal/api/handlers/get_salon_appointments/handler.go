package get_salon_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/api/middleware"
	"github.com/beautyline/salon-service/internal/domain"
	"github.com/beautyline/salon-service/internal/service/appointments"
	"github.com/beautyline/salon-service/internal/service/appointments/models"
)

const (
	msgInvalidSalonID      = "некорректный идентификатор салона"
	msgInvalidSpecialistID = "некорректный идентификатор мастера"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized        = "требуется аутентификация"
	msgSalonNotFound       = "салон не найден"
	msgAccessDenied        = "нет доступа к записям этого салона"
	msgInvalidStatus       = "некорректный статус записи"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	isAdmin := middleware.IsAdmin(r.Context())

	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{salonId}/appointments - Invalid salon id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	query := r.URL.Query()

	req := &models.GetSalonAppointmentsRequest{
		SalonID:         salonID,
		ActorID:         actorID,
		IsAdmin:         isAdmin,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("specialistId"); raw != "" {
		specialistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{salonId}/appointments - Invalid specialist id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpecialistID)
			return
		}
		req.SpecialistID = &specialistID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /salons/{salonId}/appointments - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /salons/{salonId}/appointments - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// Правая граница включает весь день
		endOfDay := to.AddDate(0, 0, 1)
		req.To = &endOfDay
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetSalonAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{salonId}/appointments - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /salons/{salonId}/appointments - Access denied: salon_id=%d, actor=%d",
				salonID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /salons/{salonId}/appointments - Invalid filter: salon_id=%d", salonID)
			handlers.RespondUnprocessable(w, msgInvalidStatus, map[string]string{"status": msgInvalidStatus})

		default:
			h.logger.Error("GET /salons/{salonId}/appointments - Failed to get appointments: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{salonId}/appointments - %d appointments: salon_id=%d",
		len(result.Appointments), salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/domain"
	getAvailableSlots "github.com/beautyline/salon-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidSalonID      = "некорректный идентификатор салона"
	msgInvalidSpecialistID = "некорректный идентификатор мастера"
	msgInvalidServiceID    = "некорректный идентификатор услуги"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGranularity  = "некорректный шаг сетки слотов"
	msgSalonNotFound       = "салон не найден"
	msgSpecialistNotFound  = "мастер не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotProvided  = "мастер не выполняет эту услугу"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/specialists/{specialistId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid salon id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	specialistID, err := strconv.ParseInt(vars["specialistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid specialist id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	query := r.URL.Query()

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service id: %v", err)
		handlers.RespondUnprocessable(w, msgInvalidServiceID, map[string]string{"serviceId": msgInvalidServiceID})
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondUnprocessable(w, msgInvalidDate, map[string]string{"date": msgInvalidDate})
		return
	}

	granularity := 0
	if raw := query.Get("granularity"); raw != "" {
		granularity, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid granularity: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidGranularity, map[string]string{"granularity": msgInvalidGranularity})
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		SalonID:            salonID,
		SpecialistID:       specialistID,
		ServiceID:          serviceID,
		Date:               date,
		GranularityMinutes: granularity,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSalonNotFound):
			h.logger.Warn("GET /available-slots - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailableSlots.ErrSpecialistNotFound):
			h.logger.Warn("GET /available-slots - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotProvided):
			h.logger.Warn("GET /available-slots - Service not provided: specialist_id=%d, service_id=%d",
				specialistID, serviceID)
			handlers.RespondUnprocessable(w, msgServiceNotProvided, map[string]string{"serviceId": msgServiceNotProvided})

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInput, nil)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: salon_id=%d, specialist_id=%d, error=%v",
				salonID, specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots: salon_id=%d, specialist_id=%d, service_id=%d",
		len(result.Slots), salonID, specialistID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

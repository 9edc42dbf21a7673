package list_reviews

import (
	"net/http"
	"strconv"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/service/reviews/models"
)

const (
	msgInvalidSalonID      = "некорректный идентификатор салона"
	msgInvalidSpecialistID = "некорректный идентификатор мастера"
	msgInvalidPagination   = "некорректные параметры пагинации"

	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListReviewsRequest{
		Limit: defaultLimit,
	}

	if raw := query.Get("salonId"); raw != "" {
		salonID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reviews - Invalid salon id: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidSalonID)
			return
		}
		req.SalonID = &salonID
	}

	if raw := query.Get("specialistId"); raw != "" {
		specialistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reviews - Invalid specialist id: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidSpecialistID)
			return
		}
		req.SpecialistID = &specialistID
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			h.logger.Warn("GET /reviews - Invalid limit: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidPagination)
			return
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		req.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reviews - Invalid offset: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidPagination)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reviews - %d reviews", len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}

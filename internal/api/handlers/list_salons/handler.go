package list_salons

import (
	"net/http"
	"strconv"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/service/catalog/models"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"

	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListSalonsRequest{
		Locale: handlers.RequestLocale(r),
		Limit:  defaultLimit,
	}

	if city := query.Get("city"); city != "" {
		req.City = &city
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			h.logger.Warn("GET /salons - Invalid limit: %s", raw)
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
			h.logger.Warn("GET /salons - Invalid offset: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidPagination)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.ListSalons(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons - %d salons", len(result.Salons))
	handlers.RespondJSON(w, http.StatusOK, result)
}

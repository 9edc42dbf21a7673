package create_review

import (
	"errors"
	"net/http"

	"github.com/beautyline/salon-service/internal/api/handlers"
	"github.com/beautyline/salon-service/internal/api/middleware"
	"github.com/beautyline/salon-service/internal/service/reviews"
	"github.com/beautyline/salon-service/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgSalonNotFound      = "салон не найден"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgInvalidInput       = "некорректные данные отзыва"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	SalonID       int64  `json:"salonId"`
	SpecialistID  *int64 `json:"specialistId,omitempty"`
	ServiceID     *int64 `json:"serviceId,omitempty"`
	AppointmentID *int64 `json:"appointmentId,omitempty"`
	Content       string `json:"content"`
	Rating        int    `json:"rating"`
}

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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateReviewRequest{
		UserID:        userID,
		SalonID:       req.SalonID,
		SpecialistID:  req.SpecialistID,
		ServiceID:     req.ServiceID,
		AppointmentID: req.AppointmentID,
		Content:       req.Content,
		Rating:        req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrSalonNotFound):
			h.logger.Warn("POST /reviews - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: rating=%d, user_id=%d", req.Rating, userID)
			handlers.RespondUnprocessable(w, msgInvalidRating, map[string]string{"rating": msgInvalidRating})

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInput, nil)

		default:
			h.logger.Error("POST /reviews - Failed to create review: salon_id=%d, error=%v", req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%d, salon_id=%d, user_id=%d",
		result.ID, req.SalonID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package models

import (
	"time"

	"github.com/beautyline/salon-service/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID        int64  `json:"userId"`
	SalonID       int64  `json:"salonId"`
	SpecialistID  *int64 `json:"specialistId,omitempty"`
	ServiceID     *int64 `json:"serviceId,omitempty"`
	AppointmentID *int64 `json:"appointmentId,omitempty"`
	Content       string `json:"content"`
	Rating        int    `json:"rating"`
}

// ListReviewsRequest запрос на получение списка отзывов
type ListReviewsRequest struct {
	SalonID      *int64 `json:"salonId,omitempty"`
	SpecialistID *int64 `json:"specialistId,omitempty"`
	Limit        uint64 `json:"limit,omitempty"`
	Offset       uint64 `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Публичная выдача показывает только одобренные отзывы
func (r *ListReviewsRequest) ToDomainFilter() domain.ReviewsFilter {
	return domain.ReviewsFilter{
		SalonID:      r.SalonID,
		SpecialistID: r.SpecialistID,
		OnlyApproved: true,
		Limit:        r.Limit,
		Offset:       r.Offset,
	}
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	SalonID      int64     `json:"salonId"`
	SpecialistID *int64    `json:"specialistId,omitempty"`
	ServiceID    *int64    `json:"serviceId,omitempty"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		SalonID:      r.SalonID,
		SpecialistID: r.SpecialistID,
		ServiceID:    r.ServiceID,
		Content:      r.Content,
		Rating:       r.Rating,
		Approved:     r.Approved,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}

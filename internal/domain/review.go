package domain

import "time"

// Review represents a client review of a salon, specialist or service
type Review struct {
	ID            int64
	UserID        int64
	SalonID       int64
	SpecialistID  *int64
	ServiceID     *int64
	AppointmentID *int64
	Content       string
	Rating        int
	Approved      bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// RatingValid проверяет, что оценка в допустимом диапазоне
func (r *Review) RatingValid() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}

// ReviewsFilter фильтр для списка отзывов
type ReviewsFilter struct {
	SalonID      *int64 // Фильтр по салону (опционально)
	SpecialistID *int64 // Фильтр по мастеру (опционально)
	OnlyApproved bool   // Публичная выдача показывает только одобренные
	Limit        uint64
	Offset       uint64
}

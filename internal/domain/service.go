package domain

import (
	"time"

	"github.com/beautyline/salon-service/pkg/i18n"
)

// Service represents a bookable salon service
type Service struct {
	ID           int64
	SalonID      int64
	CategoryID   *int64
	Name         string
	Translations i18n.Translations
	Price        float64
	// Акционная цена; при наличии именно она попадает в снапшот записи
	DiscountedPrice *float64
	DurationMinutes int
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// EffectivePrice возвращает цену с учетом скидки
func (s *Service) EffectivePrice() float64 {
	if s.DiscountedPrice != nil {
		return *s.DiscountedPrice
	}
	return s.Price
}

// Duration возвращает длительность услуги
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Description возвращает локализованное описание услуги
func (s *Service) Description(locale, fallback string) string {
	return s.Translations.Localize("description", locale, fallback)
}

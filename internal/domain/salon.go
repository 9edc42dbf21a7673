package domain

import (
	"time"

	"github.com/beautyline/salon-service/pkg/i18n"
)

// Salon represents a salon with its working hours and ownership
type Salon struct {
	ID           int64
	OwnerID      int64
	Slug         string
	Name         string
	Translations i18n.Translations
	Address      string
	City         string
	Phone        *string
	Email        *string
	Website      *string
	WorkingHours WeekSchedule
	Timezone     string // IANA-имя зоны, в которой заданы рабочие часы
	Active       bool
	Verified     bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsOwnedBy проверяет, что салон принадлежит пользователю
func (s *Salon) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

// Location возвращает зону салона, UTC при пустом/некорректном значении
func (s *Salon) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Description возвращает локализованное описание салона
func (s *Salon) Description(locale, fallback string) string {
	return s.Translations.Localize("description", locale, fallback)
}

// SalonsFilter фильтр для списка салонов
type SalonsFilter struct {
	City       *string // Фильтр по городу (опционально)
	OnlyActive bool    // Только активные салоны
	Limit      uint64
	Offset     uint64
}

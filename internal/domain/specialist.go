package domain

import (
	"time"

	"github.com/beautyline/salon-service/pkg/i18n"
)

// Specialist represents a salon worker who performs services
type Specialist struct {
	ID           int64
	SalonID      int64
	UserID       *int64 // Привязка к аккаунту, nil если мастер без аккаунта
	Name         string
	Translations i18n.Translations
	Position     *string
	Bio          *string

	// Персональное расписание; nil = работает по часам салона
	WorkingHours *WeekSchedule

	// Услуги, которые мастер выполняет (specialist_service)
	ServiceIDs []int64

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// PerformsService проверяет, что мастер выполняет услугу
func (s *Specialist) PerformsService(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// TranslatedPosition возвращает локализованную должность
func (s *Specialist) TranslatedPosition(locale, fallback string) string {
	if text := s.Translations.Localize("position", locale, fallback); text != "" {
		return text
	}
	if s.Position != nil {
		return *s.Position
	}
	return ""
}

// TranslatedBio возвращает локализованную биографию
func (s *Specialist) TranslatedBio(locale, fallback string) string {
	if text := s.Translations.Localize("bio", locale, fallback); text != "" {
		return text
	}
	if s.Bio != nil {
		return *s.Bio
	}
	return ""
}

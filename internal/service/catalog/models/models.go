package models

import (
	"time"

	"github.com/beautyline/salon-service/internal/domain"
)

// Request модели

// ListSalonsRequest запрос на получение списка салонов
type ListSalonsRequest struct {
	City   *string `json:"city,omitempty"` // Фильтр по городу (опционально)
	Locale string  `json:"-"`              // Локаль для переводимых полей
	Limit  uint64  `json:"limit,omitempty"`
	Offset uint64  `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Публичная выдача показывает только активные салоны
func (r *ListSalonsRequest) ToDomainFilter() domain.SalonsFilter {
	return domain.SalonsFilter{
		City:       r.City,
		OnlyActive: true,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}

// GetSalonRequest запрос на получение карточки салона
type GetSalonRequest struct {
	SalonID int64  `json:"salonId"`
	Locale  string `json:"-"` // Локаль для переводимых полей
}

// Response модели

// DayScheduleResponse расписание на день
type DayScheduleResponse struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`  // "09:00"
	Close  string `json:"close,omitempty"` // "18:00"
}

// WeekScheduleResponse расписание на неделю
type WeekScheduleResponse struct {
	Monday    DayScheduleResponse `json:"monday"`
	Tuesday   DayScheduleResponse `json:"tuesday"`
	Wednesday DayScheduleResponse `json:"wednesday"`
	Thursday  DayScheduleResponse `json:"thursday"`
	Friday    DayScheduleResponse `json:"friday"`
	Saturday  DayScheduleResponse `json:"saturday"`
	Sunday    DayScheduleResponse `json:"sunday"`
}

// SalonResponse ответ с данными салона
type SalonResponse struct {
	ID           int64                `json:"id"`
	Slug         string               `json:"slug"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	Phone        *string              `json:"phone,omitempty"`
	Email        *string              `json:"email,omitempty"`
	Website      *string              `json:"website,omitempty"`
	WorkingHours WeekScheduleResponse `json:"workingHours"`
	Timezone     string               `json:"timezone"`
	Verified     bool                 `json:"verified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SalonListResponse ответ со списком салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64    `json:"id"`
	CategoryID      *int64   `json:"categoryId,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	EffectivePrice  float64  `json:"effectivePrice"`
	DurationMinutes int      `json:"durationMinutes"`
}

// SpecialistResponse ответ с данными мастера
type SpecialistResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Position     string                `json:"position,omitempty"`
	Bio          string                `json:"bio,omitempty"`
	ServiceIDs   []int64               `json:"serviceIds"`
	WorkingHours *WeekScheduleResponse `json:"workingHours,omitempty"` // nil = часы салона
}

// SalonDetailsResponse карточка салона с услугами и мастерами
type SalonDetailsResponse struct {
	SalonResponse
	Services    []ServiceResponse    `json:"services"`
	Specialists []SpecialistResponse `json:"specialists"`
}

// Методы конвертации

// FromDomainDaySchedule конвертирует расписание дня в DTO
func FromDomainDaySchedule(d domain.DaySchedule) DayScheduleResponse {
	if !d.IsWorkable() {
		return DayScheduleResponse{Closed: true}
	}
	return DayScheduleResponse{
		Open:  d.Open.String(),
		Close: d.Close.String(),
	}
}

// FromDomainWeekSchedule конвертирует расписание недели в DTO
func FromDomainWeekSchedule(w domain.WeekSchedule) WeekScheduleResponse {
	return WeekScheduleResponse{
		Monday:    FromDomainDaySchedule(w.Monday),
		Tuesday:   FromDomainDaySchedule(w.Tuesday),
		Wednesday: FromDomainDaySchedule(w.Wednesday),
		Thursday:  FromDomainDaySchedule(w.Thursday),
		Friday:    FromDomainDaySchedule(w.Friday),
		Saturday:  FromDomainDaySchedule(w.Saturday),
		Sunday:    FromDomainDaySchedule(w.Sunday),
	}
}

// FromDomainSalon конвертирует domain модель в DTO с учетом локали
func FromDomainSalon(s *domain.Salon, locale, fallback string) *SalonResponse {
	if s == nil {
		return nil
	}

	return &SalonResponse{
		ID:           s.ID,
		Slug:         s.Slug,
		Name:         s.Name,
		Description:  s.Description(locale, fallback),
		Address:      s.Address,
		City:         s.City,
		Phone:        s.Phone,
		Email:        s.Email,
		Website:      s.Website,
		WorkingHours: FromDomainWeekSchedule(s.WorkingHours),
		Timezone:     s.Timezone,
		Verified:     s.Verified,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSalonList конвертирует список domain моделей в DTO
func FromDomainSalonList(salons []*domain.Salon, locale, fallback string) *SalonListResponse {
	resp := &SalonListResponse{
		Salons: make([]SalonResponse, 0, len(salons)),
	}

	for _, salon := range salons {
		if salonResp := FromDomainSalon(salon, locale, fallback); salonResp != nil {
			resp.Salons = append(resp.Salons, *salonResp)
		}
	}

	return resp
}

// FromDomainService конвертирует услугу в DTO с учетом локали
func FromDomainService(s *domain.Service, locale, fallback string) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		CategoryID:      s.CategoryID,
		Name:            s.Name,
		Description:     s.Description(locale, fallback),
		Price:           s.Price,
		DiscountedPrice: s.DiscountedPrice,
		EffectivePrice:  s.EffectivePrice(),
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainSpecialist конвертирует мастера в DTO с учетом локали
func FromDomainSpecialist(s *domain.Specialist, locale, fallback string) SpecialistResponse {
	resp := SpecialistResponse{
		ID:         s.ID,
		Name:       s.Name,
		Position:   s.TranslatedPosition(locale, fallback),
		Bio:        s.TranslatedBio(locale, fallback),
		ServiceIDs: s.ServiceIDs,
	}

	if s.WorkingHours != nil {
		hours := FromDomainWeekSchedule(*s.WorkingHours)
		resp.WorkingHours = &hours
	}

	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []int64{}
	}

	return resp
}

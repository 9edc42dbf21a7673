package get_available_slots

import (
	"time"

	"github.com/beautyline/salon-service/internal/domain"
	getAvailableSlots "github.com/beautyline/salon-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	SalonID         int64    `json:"salonId"`
	SpecialistID    int64    `json:"specialistId"`
	ServiceID       int64    `json:"serviceId"`
	Date            string   `json:"date"`            // "2025-10-15"
	DurationMinutes int      `json:"durationMinutes"` // Длительность услуги
	Slots           []string `json:"slots"`           // Времена начала в формате RFC 3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.Format(time.RFC3339))
	}

	return &AvailableSlotsResponse{
		SalonID:         resp.SalonID,
		SpecialistID:    resp.SpecialistID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

package update_appointment

import (
	"time"

	updateAppointment "github.com/beautyline/salon-service/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model
// Отсутствующие поля не изменяются
type UpdateAppointmentRequest struct {
	ServiceID *int64  `json:"serviceId,omitempty"`
	StartTime *string `json:"startTime,omitempty"` // RFC 3339
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	UserID       *int64  `json:"userId,omitempty"`
	SalonID      int64   `json:"salonId"`
	SpecialistID int64   `json:"specialistId"`
	ServiceID    int64   `json:"serviceId"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID, actorID int64, isAdmin bool) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		AppointmentID: appointmentID,
		ActorID:       actorID,
		IsAdmin:       isAdmin,
		ServiceID:     r.ServiceID,
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		SalonID:      resp.SalonID,
		SpecialistID: resp.SpecialistID,
		ServiceID:    resp.ServiceID,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		Price:        resp.Price,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

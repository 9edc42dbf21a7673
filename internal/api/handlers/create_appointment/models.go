package create_appointment

import (
	"time"

	createAppointment "github.com/beautyline/salon-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SalonID      int64   `json:"salonId"`
	SpecialistID int64   `json:"specialistId"`
	ServiceID    int64   `json:"serviceId"`
	StartTime    string  `json:"startTime"` // RFC 3339: "2025-10-15T10:00:00+03:00"
	Notes        *string `json:"notes,omitempty"`

	// Гостевая запись от имени клиента без аккаунта
	AsGuest     bool    `json:"asGuest,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
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
	ClientName   *string `json:"clientName,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	ClientEmail  *string `json:"clientEmail,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(actorID int64, isAdmin bool) (*createAppointment.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ActorID:      actorID,
		IsAdmin:      isAdmin,
		SalonID:      r.SalonID,
		SpecialistID: r.SpecialistID,
		ServiceID:    r.ServiceID,
		StartTime:    startTime,
		Notes:        r.Notes,
		AsGuest:      r.AsGuest,
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		ClientEmail:  r.ClientEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
		ClientName:   resp.ClientName,
		ClientPhone:  resp.ClientPhone,
		ClientEmail:  resp.ClientEmail,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid проверяет, что статус является одним из допустимых
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked (or pending) reservation in a salon
type Appointment struct {
	ID           int64
	UserID       *int64 // nil для гостевых записей (клиент без аккаунта)
	SalonID      int64
	SpecialistID int64
	ServiceID    int64
	StartTime    time.Time
	EndTime      time.Time
	Status       AppointmentStatus

	// Snapshot of the service price at booking time.
	// Later price edits on the service must not alter history.
	Price float64

	Notes *string

	// Denormalized client contact for guest bookings
	ClientName  *string
	ClientPhone *string
	ClientEmail *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// allowedTransitions граф переходов статусов
// completed и cancelled - терминальные состояния
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionTo проверяет допустимость перехода статуса
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, s := range allowedTransitions[a.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsActive returns true if the appointment occupies the specialist's calendar
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsTerminal returns true if no further status transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.CanTransitionTo(StatusCancelled)
}

// CanBeRescheduled returns true if time/service edits are still allowed
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval возвращает занимаемый записью интервал [StartTime, EndTime)
func (a *Appointment) Interval() TimeInterval {
	return TimeInterval{Start: a.StartTime, End: a.EndTime}
}

// IsOwnedBy проверяет, что запись принадлежит пользователю
// Гостевые записи (UserID == nil) не принадлежат никому
func (a *Appointment) IsOwnedBy(userID int64) bool {
	return a.UserID != nil && *a.UserID == userID
}

// SalonAppointmentsFilter фильтр для получения записей салона
type SalonAppointmentsFilter struct {
	SalonID         int64              // Обязательный параметр
	SpecialistID    *int64             // Фильтр по мастеру (опционально)
	From            *time.Time         // Начало периода (опционально)
	To              *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные записи
}

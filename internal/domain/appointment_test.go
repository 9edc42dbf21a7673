package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/beautyline/salon-service/pkg/ptr"
)

func TestAppointmentStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, AppointmentStatus("archived").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			appt := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, appt.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestAppointment_CanBeRescheduled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeRescheduled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeRescheduled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeRescheduled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeRescheduled())
}

func TestAppointment_IsOwnedBy(t *testing.T) {
	owned := &Appointment{UserID: ptr.Ptr(int64(42))}
	assert.True(t, owned.IsOwnedBy(42))
	assert.False(t, owned.IsOwnedBy(7))

	guest := &Appointment{UserID: nil}
	assert.False(t, guest.IsOwnedBy(42))
}

func TestAppointment_Interval(t *testing.T) {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	appt := &Appointment{StartTime: start, EndTime: end}

	assert.Equal(t, TimeInterval{Start: start, End: end}, appt.Interval())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.IsValid())
	assert.True(t, AppointmentStatusConfirmed.IsValid())
	assert.True(t, AppointmentStatusCompleted.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("DONE").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
}

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusCompleted, false},
		// Same-state moves are always permitted (no-op for callers)
		{AppointmentStatusPending, AppointmentStatusPending, true},
		{AppointmentStatusConfirmed, AppointmentStatusConfirmed, true},
		{AppointmentStatusCompleted, AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, AppointmentStatusCancelled, true},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestAppointmentIsCancelled(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusCancelled}
	assert.True(t, a.IsCancelled())

	a.Status = AppointmentStatusConfirmed
	assert.False(t, a.IsCancelled())
}

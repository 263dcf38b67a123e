package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted out of s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether the move from s to target is permitted.
// Allowed edges: PENDING -> {CONFIRMED, CANCELLED},
// CONFIRMED -> {COMPLETED, CANCELLED}. A same-state move is permitted and
// treated as a no-op by callers.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s == target {
		return true
	}
	switch s {
	case AppointmentStatusPending:
		return target == AppointmentStatusConfirmed || target == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return target == AppointmentStatusCompleted || target == AppointmentStatusCancelled
	}
	return false
}

// Appointment links one patient and one provider at a point in time.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"provider_id"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'PENDING';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Provider Provider  `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Payments []Payment `gorm:"foreignKey:AppointmentID" json:"payments,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

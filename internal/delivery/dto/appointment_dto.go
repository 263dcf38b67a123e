package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	ProviderID      uuid.UUID `json:"provider_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	Notes           string    `json:"notes"`
	// Status may be omitted; when present it must be PENDING, the only
	// legal initial state.
	Status string `json:"status" validate:"omitempty,oneof=PENDING"`
}

type UpdateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	ProviderID      uuid.UUID `json:"provider_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	PatientID       uuid.UUID         `json:"patient_id"`
	ProviderID      uuid.UUID         `json:"provider_id"`
	AppointmentDate string            `json:"appointment_date"`
	Notes           string            `json:"notes,omitempty"`
	Status          string            `json:"status"`
	Patient         *PatientResponse  `json:"patient,omitempty"`
	Provider        *ProviderResponse `json:"provider,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateEnrollmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	StartDate string    `json:"start_date" validate:"required"`
	EndDate   string    `json:"end_date" validate:"required"`
	// Progress outside [0,100] is clamped, not rejected.
	Progress int `json:"progress"`
}

type UpdateEnrollmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	StartDate string    `json:"start_date" validate:"required"`
	EndDate   string    `json:"end_date" validate:"required"`
	Progress  int       `json:"progress"`
}

// Response DTOs

type EnrollmentResponse struct {
	ID        uuid.UUID                `json:"id"`
	PatientID uuid.UUID                `json:"patient_id"`
	ServiceID uuid.UUID                `json:"service_id"`
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Progress  int                      `json:"progress"`
	Patient   *PatientResponse         `json:"patient,omitempty"`
	Service   *WellnessServiceResponse `json:"service,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	Total       int                  `json:"total"`
}

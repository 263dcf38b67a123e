package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
}

type UpdateHealthRecordsRequest struct {
	Records string `json:"records"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type HealthRecordsResponse struct {
	Records string `json:"records"`
}

type UpdatedHealthRecordsResponse struct {
	HealthRecords string `json:"healthRecords"`
}

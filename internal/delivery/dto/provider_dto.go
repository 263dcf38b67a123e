package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateProviderRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
}

// Response DTOs

type ProviderResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Total     int                `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
}

type RegisterProviderRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse carries the bearer token pair. Exactly one of PatientID
// or ProviderID is set, naming the record the token is bound to.
type TokenResponse struct {
	Token        string     `json:"token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int64      `json:"expires_in"`
	PatientID    *uuid.UUID `json:"patient_id,omitempty"`
	ProviderID   *uuid.UUID `json:"provider_id,omitempty"`
}

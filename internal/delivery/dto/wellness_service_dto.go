package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateWellnessServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Duration    int             `json:"duration" validate:"gte=0"`
	Fee         decimal.Decimal `json:"fee"`
}

type UpdateWellnessServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Duration    int             `json:"duration" validate:"gte=0"`
	Fee         decimal.Decimal `json:"fee"`
}

// Response DTOs

type WellnessServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"`
	Fee         decimal.Decimal `json:"fee"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type WellnessServiceListResponse struct {
	Services []WellnessServiceResponse `json:"services"`
	Total    int                       `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs
//
// Neither request carries a transaction id: it is server-generated at
// creation and immutable afterwards.

type CreatePaymentRequest struct {
	PatientID     uuid.UUID       `json:"patient_id" validate:"required"`
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	ServiceID     uuid.UUID       `json:"service_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=PENDING SUCCESS FAILED"`
	PaymentDate   string          `json:"payment_date"`
}

type UpdatePaymentRequest struct {
	PatientID     uuid.UUID       `json:"patient_id" validate:"required"`
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	ServiceID     uuid.UUID       `json:"service_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status" validate:"required,oneof=PENDING SUCCESS FAILED"`
	PaymentDate   string          `json:"payment_date"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID                `json:"id"`
	PatientID     uuid.UUID                `json:"patient_id"`
	AppointmentID uuid.UUID                `json:"appointment_id"`
	ServiceID     uuid.UUID                `json:"service_id"`
	Amount        decimal.Decimal          `json:"amount"`
	PaymentStatus string                   `json:"payment_status"`
	PaymentDate   string                   `json:"payment_date"`
	TransactionID string                   `json:"transaction_id"`
	Patient       *PatientResponse         `json:"patient,omitempty"`
	Appointment   *AppointmentResponse     `json:"appointment,omitempty"`
	Service       *WellnessServiceResponse `json:"service,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement status of a payment.
// Transitions between the three values are deliberately unconstrained;
// the evidence supports no state machine here.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment ties a patient, an appointment and a service to an amount and a
// settlement status. TransactionID is assigned once at creation and never
// changes afterwards.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	ServiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentStatus PaymentStatus   `gorm:"type:payment_status;not null;default:'PENDING';index" json:"payment_status"`
	PaymentDate   time.Time       `gorm:"not null" json:"payment_date"`
	TransactionID string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"transaction_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment Appointment     `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Service     WellnessService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

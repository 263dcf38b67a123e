package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WellnessService is a catalog entry patients can enroll in and be
// billed for. Fee is never negative.
type WellnessService struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int             `gorm:"not null;default:0" json:"duration"`
	Fee             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:ServiceID" json:"enrollments,omitempty"`
	Payments    []Payment    `gorm:"foreignKey:ServiceID" json:"payments,omitempty"`
}

func (WellnessService) TableName() string {
	return "wellness_services"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider represents a practitioner who can be booked for appointments.
type Provider struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ProviderID" json:"appointments,omitempty"`
}

func (Provider) TableName() string {
	return "providers"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a clinic patient with login credentials and a
// free-text health record blob.
type Patient struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"type:text;not null" json:"-"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth   time.Time `gorm:"type:date" json:"date_of_birth"`
	HealthRecords string    `gorm:"type:text" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Enrollments  []Enrollment  `gorm:"foreignKey:PatientID" json:"enrollments,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:PatientID" json:"payments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

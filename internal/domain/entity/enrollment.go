package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment tracks a patient's participation in a wellness service over
// a date range. Progress is an inert gauge: reaching 100 triggers nothing.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Service WellnessService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// ClampProgress forces a raw progress value into [0,100]. Out-of-range
// input is clamped, not rejected.
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

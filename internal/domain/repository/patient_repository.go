package repository

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	// UpdateHealthRecords writes only the health_records column so a
	// concurrent profile edit cannot clobber it.
	UpdateHealthRecords(ctx context.Context, id uuid.UUID, records string) (int64, error)
	// CountReferences counts live appointments, enrollments and payments
	// pointing at the patient.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// DeleteCascade removes the patient together with all dependent
	// appointments, enrollments and payments in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
}

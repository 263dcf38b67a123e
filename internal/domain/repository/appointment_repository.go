package repository

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	// UpdateStatusFrom sets the status to target only when the current
	// status is one of from. Returns affected rows: 0 means the guard
	// failed under concurrency and the caller must re-read.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from []entity.AppointmentStatus, target entity.AppointmentStatus) (int64, error)
	CountPayments(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
}

package repository

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error)
	FindAll(ctx context.Context) ([]entity.Enrollment, error)
	Update(ctx context.Context, enrollment *entity.Enrollment) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

package repository

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

type WellnessServiceRepository interface {
	Create(ctx context.Context, service *entity.WellnessService) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WellnessService, error)
	FindAll(ctx context.Context) ([]entity.WellnessService, error)
	Update(ctx context.Context, service *entity.WellnessService) error
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
}

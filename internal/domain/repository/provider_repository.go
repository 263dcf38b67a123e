package repository

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
	FindByEmail(ctx context.Context, email string) (*entity.Provider, error)
	FindAll(ctx context.Context) ([]entity.Provider, error)
	Update(ctx context.Context, provider *entity.Provider) error
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// DeleteCascade removes the provider, its appointments and the
	// payments recorded against those appointments in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
}

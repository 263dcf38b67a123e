package repository

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]entity.Payment, error)
	// Update persists payment mutations. Implementations must never
	// write the transaction_id column.
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

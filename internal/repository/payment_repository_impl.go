package repository

import (
	"context"
	"errors"

	"wellness-clinic-service/internal/domain/entity"
	domainRepo "wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Appointment").
		Preload("Service").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Appointment").
		Preload("Service").
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Update deliberately excludes transaction_id: it is assigned at creation
// and never rewritten.
func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Model(payment).
		Select("patient_id", "appointment_id", "service_id", "amount", "payment_status", "payment_date").
		Updates(payment).Error
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Payment{})
	return result.RowsAffected, result.Error
}

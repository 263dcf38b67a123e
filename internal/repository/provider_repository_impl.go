package repository

import (
	"context"
	"errors"

	"wellness-clinic-service/internal/domain/entity"
	domainRepo "wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type providerRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) domainRepo.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	var provider entity.Provider
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindByEmail(ctx context.Context, email string) (*entity.Provider, error) {
	var provider entity.Provider
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindAll(ctx context.Context) ([]entity.Provider, error) {
	var providers []entity.Provider
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) Update(ctx context.Context, provider *entity.Provider) error {
	return r.db.WithContext(ctx).Model(provider).
		Select("name", "email", "phone", "specialization").
		Updates(provider).Error
}

func (r *providerRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("provider_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *providerRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Provider{})
	return result.RowsAffected, result.Error
}

func (r *providerRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Payments hang off the provider's appointments, so they go first.
		if err := tx.Where("appointment_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&entity.Appointment{}).Select("id").Where("provider_id = ?", id),
		).Delete(&entity.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("provider_id = ?", id).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Provider{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

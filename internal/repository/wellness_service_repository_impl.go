package repository

import (
	"context"
	"errors"

	"wellness-clinic-service/internal/domain/entity"
	domainRepo "wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wellnessServiceRepository struct {
	db *gorm.DB
}

func NewWellnessServiceRepository(db *gorm.DB) domainRepo.WellnessServiceRepository {
	return &wellnessServiceRepository{db: db}
}

func (r *wellnessServiceRepository) Create(ctx context.Context, service *entity.WellnessService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *wellnessServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WellnessService, error) {
	var service entity.WellnessService
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *wellnessServiceRepository) FindAll(ctx context.Context) ([]entity.WellnessService, error) {
	var services []entity.WellnessService
	err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *wellnessServiceRepository) Update(ctx context.Context, service *entity.WellnessService) error {
	return r.db.WithContext(ctx).Model(service).
		Select("name", "description", "duration_minutes", "fee").
		Updates(service).Error
}

func (r *wellnessServiceRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total int64
	for _, model := range []interface{}{&entity.Enrollment{}, &entity.Payment{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Where("service_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

func (r *wellnessServiceRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.WellnessService{})
	return result.RowsAffected, result.Error
}

func (r *wellnessServiceRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&entity.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&entity.Enrollment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.WellnessService{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

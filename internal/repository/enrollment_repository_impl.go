package repository

import (
	"context"
	"errors"

	"wellness-clinic-service/internal/domain/entity"
	domainRepo "wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domainRepo.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Service").
		Where("id = ?", id).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindAll(ctx context.Context) ([]entity.Enrollment, error) {
	var enrollments []entity.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Service").
		Order("created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	return r.db.WithContext(ctx).Model(enrollment).
		Select("patient_id", "service_id", "start_date", "end_date", "progress").
		Updates(enrollment).Error
}

func (r *enrollmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Enrollment{})
	return result.RowsAffected, result.Error
}

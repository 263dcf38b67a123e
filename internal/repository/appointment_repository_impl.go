package repository

import (
	"context"
	"errors"

	"wellness-clinic-service/internal/domain/entity"
	domainRepo "wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Provider").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Provider").
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Model(appointment).
		Select("patient_id", "provider_id", "appointment_date", "notes", "status").
		Updates(appointment).Error
}

// UpdateStatusFrom performs the transition as a single guarded UPDATE so
// two concurrent status changes cannot interleave. Zero affected rows
// means the row was gone or its status left the from set first.
func (r *appointmentRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from []entity.AppointmentStatus, target entity.AppointmentStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", target)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountPayments(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Where("appointment_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", id).Delete(&entity.Payment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Appointment{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

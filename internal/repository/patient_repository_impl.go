package repository

import (
	"context"
	"errors"

	"wellness-clinic-service/internal/domain/entity"
	domainRepo "wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	// Column list keeps health_records and password out of profile
	// updates; those have dedicated write paths.
	return r.db.WithContext(ctx).Model(patient).
		Select("name", "email", "phone", "address", "date_of_birth").
		Updates(patient).Error
}

func (r *patientRepository) UpdateHealthRecords(ctx context.Context, id uuid.UUID, records string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Patient{}).
		Where("id = ?", id).
		Update("health_records", records)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total int64
	for _, model := range []interface{}{&entity.Appointment{}, &entity.Enrollment{}, &entity.Payment{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Where("patient_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A payment may reference one of this patient's appointments while
		// belonging to another patient, so the appointment subquery has to
		// go along with the patient_id match before appointments are removed.
		if err := tx.Where("patient_id = ?", id).
			Or("appointment_id IN (?)",
				tx.Session(&gorm.Session{NewDB: true}).Model(&entity.Appointment{}).Select("id").Where("patient_id = ?", id),
			).Delete(&entity.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&entity.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Patient{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

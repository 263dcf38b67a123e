package usecase

import (
	"context"

	"wellness-clinic-service/internal/converter"
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/delivery/http/middleware"
	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/internal/domain/repository"
	"wellness-clinic-service/internal/service"
	"wellness-clinic-service/pkg/apperror"
	"wellness-clinic-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound      = apperror.NotFound("patient not found")
	ErrPatientHasReferences = apperror.Conflict("patient has appointments, enrollments or payments; pass cascade to delete them")
	ErrNotRecordOwner       = apperror.Auth("token does not match the record owner")
)

type PatientUsecase interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID, cascade bool) error
	GetHealthRecords(ctx context.Context, id uuid.UUID) (*dto.HealthRecordsResponse, error)
	UpdateHealthRecords(ctx context.Context, id uuid.UUID, req *dto.UpdateHealthRecordsRequest) (*dto.UpdatedHealthRecordsResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// requireOwner rejects calls whose token is not bound to the patient id
// being mutated.
func requireOwner(ctx context.Context, id uuid.UUID, subjectType jwt.SubjectType) error {
	gotType, ok := middleware.GetSubjectTypeFromContext(ctx)
	if !ok || gotType != subjectType {
		return ErrNotRecordOwner
	}
	subjectID, ok := middleware.GetSubjectIDFromContext(ctx)
	if !ok || subjectID != id {
		return ErrNotRecordOwner
	}
	return nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := requireOwner(ctx, id, jwt.SubjectPatient); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Email != patient.Email {
		existing, err := u.patientRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check patient email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	patient.Name = req.Name
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.Address = req.Address
	if req.DateOfBirth != "" {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient rejects the delete while live references exist unless
// cascade is set, in which case the dependents go with the patient in
// one transaction.
func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID, cascade bool) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	var affected int64
	if cascade {
		affected, err = u.patientRepo.DeleteCascade(ctx, id)
	} else {
		refs, countErr := u.patientRepo.CountReferences(ctx, id)
		if countErr != nil {
			u.log.Warnf("Failed to count patient references: %+v", countErr)
			return countErr
		}
		if refs > 0 {
			return ErrPatientHasReferences
		}
		affected, err = u.patientRepo.Delete(ctx, id)
	}
	if err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasReferences
		}
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, nil, entity.AuditActionPatientDelete, "patient", id.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Audit write failed for patient delete: %+v", err)
	}
	return nil
}

func (u *patientUsecase) GetHealthRecords(ctx context.Context, id uuid.UUID) (*dto.HealthRecordsResponse, error) {
	if err := requireOwner(ctx, id, jwt.SubjectPatient); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return &dto.HealthRecordsResponse{Records: patient.HealthRecords}, nil
}

func (u *patientUsecase) UpdateHealthRecords(ctx context.Context, id uuid.UUID, req *dto.UpdateHealthRecordsRequest) (*dto.UpdatedHealthRecordsResponse, error) {
	if err := requireOwner(ctx, id, jwt.SubjectPatient); err != nil {
		return nil, err
	}

	affected, err := u.patientRepo.UpdateHealthRecords(ctx, id, req.Records)
	if err != nil {
		u.log.Warnf("Failed to update health records for %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPatientNotFound
	}

	if err := u.auditService.LogUpdate(ctx, &id, entity.AuditActionHealthRecordsUpdate, "patient", id.String(), nil, nil); err != nil {
		u.log.Warnf("Audit write failed for health records update: %+v", err)
	}

	return &dto.UpdatedHealthRecordsResponse{HealthRecords: req.Records}, nil
}

package usecase

import (
	"context"

	"wellness-clinic-service/internal/converter"
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/internal/domain/repository"
	"wellness-clinic-service/internal/service"
	"wellness-clinic-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEnrollmentNotFound    = apperror.NotFound("enrollment not found")
	ErrInvalidEnrollmentDate = apperror.Validation("invalid enrollment date, use YYYY-MM-DD")
	ErrEndBeforeStart        = apperror.Validation("end date must not be before start date")
)

type EnrollmentUsecase interface {
	CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	GetEnrollment(ctx context.Context, id uuid.UUID) (*dto.EnrollmentResponse, error)
	GetAllEnrollments(ctx context.Context) (*dto.EnrollmentListResponse, error)
	UpdateEnrollment(ctx context.Context, id uuid.UUID, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	DeleteEnrollment(ctx context.Context, id uuid.UUID) error
}

type enrollmentUsecase struct {
	log            *logrus.Logger
	enrollmentRepo repository.EnrollmentRepository
	patientRepo    repository.PatientRepository
	serviceRepo    repository.WellnessServiceRepository
	auditService   service.AuditService
}

func NewEnrollmentUsecase(
	log *logrus.Logger,
	enrollmentRepo repository.EnrollmentRepository,
	patientRepo repository.PatientRepository,
	serviceRepo repository.WellnessServiceRepository,
	auditService service.AuditService,
) EnrollmentUsecase {
	return &enrollmentUsecase{
		log:            log,
		enrollmentRepo: enrollmentRepo,
		patientRepo:    patientRepo,
		serviceRepo:    serviceRepo,
		auditService:   auditService,
	}
}

func (u *enrollmentUsecase) resolveRefs(ctx context.Context, patientID, serviceID uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	svc, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find wellness service %s: %+v", serviceID, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	return nil
}

func (u *enrollmentUsecase) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	if err := u.resolveRefs(ctx, req.PatientID, req.ServiceID); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidEnrollmentDate
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidEnrollmentDate
	}
	if endDate.Before(startDate) {
		return nil, ErrEndBeforeStart
	}

	enrollment := &entity.Enrollment{
		PatientID: req.PatientID,
		ServiceID: req.ServiceID,
		StartDate: startDate,
		EndDate:   endDate,
		Progress:  entity.ClampProgress(req.Progress),
	}

	if err := u.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		u.log.Warnf("Failed to create enrollment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, nil, entity.AuditActionEnrollmentCreate, "enrollment", enrollment.ID.String(), converter.EnrollmentToResponse(enrollment)); err != nil {
		u.log.Warnf("Audit write failed for enrollment create: %+v", err)
	}

	full, err := u.enrollmentRepo.FindByID(ctx, enrollment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload enrollment %s: %+v", enrollment.ID, err)
		return converter.EnrollmentToResponse(enrollment), nil
	}
	return converter.EnrollmentToResponse(full), nil
}

func (u *enrollmentUsecase) GetEnrollment(ctx context.Context, id uuid.UUID) (*dto.EnrollmentResponse, error) {
	enrollment, err := u.enrollmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find enrollment %s: %+v", id, err)
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}
	return converter.EnrollmentToResponse(enrollment), nil
}

func (u *enrollmentUsecase) GetAllEnrollments(ctx context.Context) (*dto.EnrollmentListResponse, error) {
	enrollments, err := u.enrollmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list enrollments: %+v", err)
		return nil, err
	}
	return &dto.EnrollmentListResponse{
		Enrollments: converter.EnrollmentsToResponses(enrollments),
		Total:       len(enrollments),
	}, nil
}

func (u *enrollmentUsecase) UpdateEnrollment(ctx context.Context, id uuid.UUID, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment, err := u.enrollmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find enrollment %s: %+v", id, err)
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	if req.PatientID != enrollment.PatientID || req.ServiceID != enrollment.ServiceID {
		if err := u.resolveRefs(ctx, req.PatientID, req.ServiceID); err != nil {
			return nil, err
		}
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidEnrollmentDate
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidEnrollmentDate
	}
	if endDate.Before(startDate) {
		return nil, ErrEndBeforeStart
	}

	enrollment.PatientID = req.PatientID
	enrollment.ServiceID = req.ServiceID
	enrollment.StartDate = startDate
	enrollment.EndDate = endDate
	enrollment.Progress = entity.ClampProgress(req.Progress)

	if err := u.enrollmentRepo.Update(ctx, enrollment); err != nil {
		u.log.Warnf("Failed to update enrollment %s: %+v", id, err)
		return nil, err
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

func (u *enrollmentUsecase) DeleteEnrollment(ctx context.Context, id uuid.UUID) error {
	enrollment, err := u.enrollmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find enrollment %s: %+v", id, err)
		return err
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}

	affected, err := u.enrollmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete enrollment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrEnrollmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, nil, entity.AuditActionEnrollmentDelete, "enrollment", id.String(), converter.EnrollmentToResponse(enrollment)); err != nil {
		u.log.Warnf("Audit write failed for enrollment delete: %+v", err)
	}
	return nil
}

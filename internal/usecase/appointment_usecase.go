package usecase

import (
	"context"
	"fmt"
	"time"

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
	ErrAppointmentNotFound     = apperror.NotFound("appointment not found")
	ErrAppointmentHasPayments  = apperror.Conflict("appointment has payments; pass cascade to delete them")
	ErrInvalidAppointmentDate  = apperror.Validation("invalid appointment date, use ISO-8601")
	ErrAppointmentDateInPast   = apperror.Validation("appointment date must not be in the past")
	ErrInvalidInitialStatus    = apperror.Validation("new appointments must start in PENDING")
	ErrUnknownAppointmentState = apperror.Validation("unknown appointment status")
)

func invalidTransitionError(from, to entity.AppointmentStatus) error {
	return apperror.InvalidTransition(fmt.Sprintf("cannot transition appointment from %s to %s", from, to))
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID, cascade bool) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	providerRepo    repository.ProviderRepository
	auditService    service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	providerRepo repository.ProviderRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		providerRepo:    providerRepo,
		auditService:    auditService,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) resolveParties(ctx context.Context, patientID, providerID uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	provider, err := u.providerRepo.FindByID(ctx, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return err
	}
	if provider == nil {
		return ErrProviderNotFound
	}
	return nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.resolveParties(ctx, req.PatientID, req.ProviderID); err != nil {
		return nil, err
	}

	appointmentDate, err := parseTimestamp(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if appointmentDate.Before(u.now().Truncate(time.Minute)) {
		return nil, ErrAppointmentDateInPast
	}

	// PENDING is the only legal initial state
	if req.Status != "" && entity.AppointmentStatus(req.Status) != entity.AppointmentStatusPending {
		return nil, ErrInvalidInitialStatus
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		ProviderID:      req.ProviderID,
		AppointmentDate: appointmentDate,
		Notes:           req.Notes,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "provider") {
			return nil, ErrProviderNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, nil, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Audit write failed for appointment create: %+v", err)
	}

	// Reload with patient and provider for the response
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment rewrites the record but still routes any status
// change through the state machine.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PatientID != appointment.PatientID || req.ProviderID != appointment.ProviderID {
		if err := u.resolveParties(ctx, req.PatientID, req.ProviderID); err != nil {
			return nil, err
		}
	}

	appointmentDate, err := parseTimestamp(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	target := entity.AppointmentStatus(req.Status)
	if !target.IsValid() {
		return nil, ErrUnknownAppointmentState
	}
	if !appointment.Status.CanTransitionTo(target) {
		return nil, invalidTransitionError(appointment.Status, target)
	}
	previous := appointment.Status

	appointment.PatientID = req.PatientID
	appointment.ProviderID = req.ProviderID
	appointment.AppointmentDate = appointmentDate
	appointment.Notes = req.Notes
	appointment.Status = target

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	if previous != target {
		if err := u.auditService.LogUpdate(ctx, nil, entity.AuditActionAppointmentStatus, "appointment", id.String(), string(previous), string(target)); err != nil {
			u.log.Warnf("Audit write failed for appointment status change: %+v", err)
		}
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentStatus applies a status-only transition. It is
// independently atomic from full updates: the write is a single guarded
// UPDATE touching only the status column, so a concurrent profile edit
// cannot be clobbered. Repeating the current status is a no-op success.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(req.Status)
	if !target.IsValid() {
		return nil, ErrUnknownAppointmentState
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.Status == target {
		return converter.AppointmentToResponse(appointment), nil
	}
	if !appointment.Status.CanTransitionTo(target) {
		return nil, invalidTransitionError(appointment.Status, target)
	}

	affected, err := u.appointmentRepo.UpdateStatusFrom(ctx, id, []entity.AppointmentStatus{appointment.Status}, target)
	if err != nil {
		u.log.Warnf("Failed to update appointment status %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Lost the race: someone moved the status first. Re-read and
		// re-evaluate against the fresh state.
		fresh, err := u.appointmentRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, ErrAppointmentNotFound
		}
		if fresh.Status == target {
			return converter.AppointmentToResponse(fresh), nil
		}
		return nil, invalidTransitionError(fresh.Status, target)
	}

	if err := u.auditService.LogUpdate(ctx, nil, entity.AuditActionAppointmentStatus, "appointment", id.String(), string(appointment.Status), string(target)); err != nil {
		u.log.Warnf("Audit write failed for appointment status change: %+v", err)
	}

	appointment.Status = target
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID, cascade bool) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	var affected int64
	if cascade {
		affected, err = u.appointmentRepo.DeleteCascade(ctx, id)
	} else {
		payments, countErr := u.appointmentRepo.CountPayments(ctx, id)
		if countErr != nil {
			u.log.Warnf("Failed to count appointment payments: %+v", countErr)
			return countErr
		}
		if payments > 0 {
			return ErrAppointmentHasPayments
		}
		affected, err = u.appointmentRepo.Delete(ctx, id)
	}
	if err != nil {
		if isForeignKeyError(err, "appointment") {
			return ErrAppointmentHasPayments
		}
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, nil, entity.AuditActionAppointmentDelete, "appointment", id.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Audit write failed for appointment delete: %+v", err)
	}
	return nil
}

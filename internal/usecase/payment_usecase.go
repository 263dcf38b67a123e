package usecase

import (
	"context"
	"crypto/rand"
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
	ErrPaymentNotFound      = apperror.NotFound("payment not found")
	ErrNonPositiveAmount    = apperror.Validation("amount must be greater than zero")
	ErrInvalidPaymentDate   = apperror.Validation("invalid payment date, use ISO-8601")
	ErrInvalidPaymentStatus = apperror.Validation("unknown payment status")
	ErrDuplicateTransaction = apperror.Conflict("transaction id already exists")
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	GetAllPayments(ctx context.Context) (*dto.PaymentListResponse, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
}

type paymentUsecase struct {
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.WellnessServiceRepository
	auditService    service.AuditService
	now             func() time.Time
}

func NewPaymentUsecase(
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.WellnessServiceRepository,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		log:             log,
		paymentRepo:     paymentRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		auditService:    auditService,
		now:             time.Now,
	}
}

// generateTransactionID builds a reference like TXN-1735730400123-A3F09B.
// The millisecond clock plus three random bytes keeps collisions out of
// reach; the unique index on transaction_id backstops the rest.
func generateTransactionID(now time.Time) (string, error) {
	var buf [3]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("TXN-%d-%02X%02X%02X", now.UnixMilli(), buf[0], buf[1], buf[2]), nil
}

func (u *paymentUsecase) resolveRefs(ctx context.Context, patientID, appointmentID, serviceID uuid.UUID) (*entity.Appointment, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	svc, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find wellness service %s: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return appointment, nil
}

func (u *paymentUsecase) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	appointment, err := u.resolveRefs(ctx, req.PatientID, req.AppointmentID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// Paying against a cancelled appointment is allowed but worth a
	// trace in the audit trail.
	if appointment.Status == entity.AppointmentStatusCancelled {
		u.log.Warnf("Payment created against cancelled appointment %s", req.AppointmentID)
	}

	status := entity.PaymentStatusPending
	if req.PaymentStatus != "" {
		status = entity.PaymentStatus(req.PaymentStatus)
		if !status.IsValid() {
			return nil, ErrInvalidPaymentStatus
		}
	}

	paymentDate := u.now()
	if req.PaymentDate != "" {
		paymentDate, err = parseTimestamp(req.PaymentDate)
		if err != nil {
			return nil, ErrInvalidPaymentDate
		}
	}

	transactionID, err := generateTransactionID(u.now())
	if err != nil {
		u.log.Warnf("Failed to generate transaction id: %+v", err)
		return nil, err
	}

	payment := &entity.Payment{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		ServiceID:     req.ServiceID,
		Amount:        req.Amount,
		PaymentStatus: status,
		PaymentDate:   paymentDate,
		TransactionID: transactionID,
	}

	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		if isDuplicateKeyError(err, "transaction") {
			return nil, ErrDuplicateTransaction
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	metadata := map[string]interface{}{
		"transaction_id":        payment.TransactionID,
		"amount":                payment.Amount.String(),
		"appointment_cancelled": appointment.Status == entity.AppointmentStatusCancelled,
	}
	if err := u.auditService.LogCreate(ctx, nil, entity.AuditActionPaymentCreate, "payment", payment.ID.String(), metadata); err != nil {
		u.log.Warnf("Audit write failed for payment create: %+v", err)
	}

	full, err := u.paymentRepo.FindByID(ctx, payment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload payment %s: %+v", payment.ID, err)
		return converter.PaymentToResponse(payment), nil
	}
	return converter.PaymentToResponse(full), nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetAllPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// UpdatePayment rewrites the mutable columns. The transaction id assigned
// at creation always survives, whatever the request carries.
func (u *paymentUsecase) UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	payment, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	appointment, err := u.resolveRefs(ctx, req.PatientID, req.AppointmentID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// The cancelled-appointment trace applies to updates too, otherwise a
	// payment could be re-pointed at a cancelled appointment silently.
	if appointment.Status == entity.AppointmentStatusCancelled {
		u.log.Warnf("Payment %s updated against cancelled appointment %s", id, req.AppointmentID)
	}

	status := entity.PaymentStatus(req.PaymentStatus)
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}
	previousStatus := payment.PaymentStatus

	paymentDate := payment.PaymentDate
	if req.PaymentDate != "" {
		paymentDate, err = parseTimestamp(req.PaymentDate)
		if err != nil {
			return nil, ErrInvalidPaymentDate
		}
	}

	payment.PatientID = req.PatientID
	payment.AppointmentID = req.AppointmentID
	payment.ServiceID = req.ServiceID
	payment.Amount = req.Amount
	payment.PaymentStatus = status
	payment.PaymentDate = paymentDate

	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		u.log.Warnf("Failed to update payment %s: %+v", id, err)
		return nil, err
	}

	if previousStatus != status {
		if err := u.auditService.LogUpdate(ctx, nil, entity.AuditActionPaymentStatusChange, "payment", id.String(), string(previousStatus), string(status)); err != nil {
			u.log.Warnf("Audit write failed for payment status change: %+v", err)
		}
	}

	if appointment.Status == entity.AppointmentStatusCancelled {
		metadata := map[string]interface{}{
			"transaction_id":        payment.TransactionID,
			"appointment_cancelled": true,
		}
		if err := u.auditService.LogUpdate(ctx, nil, entity.AuditActionPaymentUpdate, "payment", id.String(), nil, metadata); err != nil {
			u.log.Warnf("Audit write failed for payment update: %+v", err)
		}
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	affected, err := u.paymentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete payment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}

	metadata := map[string]interface{}{
		"transaction_id": payment.TransactionID,
		"amount":         payment.Amount.String(),
	}
	if err := u.auditService.LogDelete(ctx, nil, entity.AuditActionPaymentDelete, "payment", id.String(), metadata); err != nil {
		u.log.Warnf("Audit write failed for payment delete: %+v", err)
	}
	return nil
}

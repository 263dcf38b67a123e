package usecase

import (
	"context"
	"testing"

	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newEnrollmentUsecaseForTest(
	enrollmentRepo *MockEnrollmentRepository,
	patientRepo *MockPatientRepository,
	serviceRepo *MockWellnessServiceRepository,
	audit *MockAuditService,
) *enrollmentUsecase {
	log := logrus.New()
	return NewEnrollmentUsecase(log, enrollmentRepo, patientRepo, serviceRepo, audit).(*enrollmentUsecase)
}

func TestCreateEnrollmentClampsProgress(t *testing.T) {
	patientID := uuid.New()
	serviceID := uuid.New()

	tests := []struct {
		requested int
		want      int
	}{
		{-20, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		var created *entity.Enrollment
		enrollmentRepo := &MockEnrollmentRepository{
			CreateFunc: func(ctx context.Context, e *entity.Enrollment) error {
				e.ID = uuid.New()
				created = e
				return nil
			},
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error) {
				return created, nil
			},
		}
		u := newEnrollmentUsecaseForTest(enrollmentRepo, existingPatient(patientID), existingService(serviceID), &MockAuditService{})

		resp, err := u.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
			PatientID: patientID,
			ServiceID: serviceID,
			StartDate: "2025-01-01",
			EndDate:   "2025-06-30",
			Progress:  tt.requested,
		})
		assert.NoError(t, err)
		assert.Equalf(t, tt.want, resp.Progress, "requested progress %d", tt.requested)
	}
}

func TestCreateEnrollmentEndBeforeStart(t *testing.T) {
	patientID := uuid.New()
	serviceID := uuid.New()
	u := newEnrollmentUsecaseForTest(&MockEnrollmentRepository{}, existingPatient(patientID), existingService(serviceID), &MockAuditService{})

	_, err := u.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		PatientID: patientID,
		ServiceID: serviceID,
		StartDate: "2025-06-30",
		EndDate:   "2025-01-01",
	})
	assert.ErrorIs(t, err, ErrEndBeforeStart)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreateEnrollmentSameDayRange(t *testing.T) {
	patientID := uuid.New()
	serviceID := uuid.New()
	enrollmentRepo := &MockEnrollmentRepository{
		CreateFunc: func(ctx context.Context, e *entity.Enrollment) error {
			e.ID = uuid.New()
			return nil
		},
	}
	u := newEnrollmentUsecaseForTest(enrollmentRepo, existingPatient(patientID), existingService(serviceID), &MockAuditService{})

	// start == end is allowed
	_, err := u.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		PatientID: patientID,
		ServiceID: serviceID,
		StartDate: "2025-03-15",
		EndDate:   "2025-03-15",
	})
	assert.NoError(t, err)
}

func TestCreateEnrollmentBadDate(t *testing.T) {
	patientID := uuid.New()
	serviceID := uuid.New()
	u := newEnrollmentUsecaseForTest(&MockEnrollmentRepository{}, existingPatient(patientID), existingService(serviceID), &MockAuditService{})

	_, err := u.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		PatientID: patientID,
		ServiceID: serviceID,
		StartDate: "01/01/2025",
		EndDate:   "2025-06-30",
	})
	assert.ErrorIs(t, err, ErrInvalidEnrollmentDate)
}

func TestCreateEnrollmentUnknownService(t *testing.T) {
	patientID := uuid.New()
	u := newEnrollmentUsecaseForTest(&MockEnrollmentRepository{}, existingPatient(patientID), &MockWellnessServiceRepository{}, &MockAuditService{})

	_, err := u.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		PatientID: patientID,
		ServiceID: uuid.New(),
		StartDate: "2025-01-01",
		EndDate:   "2025-06-30",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateEnrollmentClampsProgress(t *testing.T) {
	id := uuid.New()
	patientID := uuid.New()
	serviceID := uuid.New()
	enrollmentRepo := &MockEnrollmentRepository{
		FindByIDFunc: func(ctx context.Context, got uuid.UUID) (*entity.Enrollment, error) {
			return &entity.Enrollment{ID: id, PatientID: patientID, ServiceID: serviceID, Progress: 10}, nil
		},
	}
	u := newEnrollmentUsecaseForTest(enrollmentRepo, existingPatient(patientID), existingService(serviceID), &MockAuditService{})

	resp, err := u.UpdateEnrollment(context.Background(), id, &dto.UpdateEnrollmentRequest{
		PatientID: patientID,
		ServiceID: serviceID,
		StartDate: "2025-01-01",
		EndDate:   "2025-06-30",
		Progress:  999,
	})
	assert.NoError(t, err)
	assert.Equal(t, 100, resp.Progress)
}

func TestDeleteEnrollment(t *testing.T) {
	id := uuid.New()
	enrollmentRepo := &MockEnrollmentRepository{
		FindByIDFunc: func(ctx context.Context, got uuid.UUID) (*entity.Enrollment, error) {
			return &entity.Enrollment{ID: id}, nil
		},
	}
	audit := &MockAuditService{}
	u := newEnrollmentUsecaseForTest(enrollmentRepo, &MockPatientRepository{}, &MockWellnessServiceRepository{}, audit)

	err := u.DeleteEnrollment(context.Background(), id)
	assert.NoError(t, err)
	assert.Contains(t, audit.Actions, entity.AuditActionEnrollmentDelete)
}

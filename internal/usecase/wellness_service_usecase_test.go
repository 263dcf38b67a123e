package usecase

import (
	"context"
	"testing"

	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newWellnessServiceUsecaseForTest(serviceRepo *MockWellnessServiceRepository, audit *MockAuditService) *wellnessServiceUsecase {
	log := logrus.New()
	return NewWellnessServiceUsecase(log, serviceRepo, audit).(*wellnessServiceUsecase)
}

func TestCreateService(t *testing.T) {
	serviceRepo := &MockWellnessServiceRepository{
		CreateFunc: func(ctx context.Context, s *entity.WellnessService) error {
			s.ID = uuid.New()
			return nil
		},
	}
	u := newWellnessServiceUsecaseForTest(serviceRepo, &MockAuditService{})

	resp, err := u.CreateService(context.Background(), &dto.CreateWellnessServiceRequest{
		Name:     "Yoga Program",
		Duration: 60,
		Fee:      decimal.NewFromFloat(49.99),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Yoga Program", resp.Name)
	assert.Equal(t, 60, resp.Duration)
	assert.True(t, resp.Fee.Equal(decimal.NewFromFloat(49.99)))
}

func TestCreateServiceNegativeFee(t *testing.T) {
	u := newWellnessServiceUsecaseForTest(&MockWellnessServiceRepository{}, &MockAuditService{})

	_, err := u.CreateService(context.Background(), &dto.CreateWellnessServiceRequest{
		Name: "Yoga Program",
		Fee:  decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, ErrNegativeFee)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreateServiceZeroFee(t *testing.T) {
	serviceRepo := &MockWellnessServiceRepository{
		CreateFunc: func(ctx context.Context, s *entity.WellnessService) error {
			s.ID = uuid.New()
			return nil
		},
	}
	u := newWellnessServiceUsecaseForTest(serviceRepo, &MockAuditService{})

	// Zero is a legal fee, only negative is rejected
	_, err := u.CreateService(context.Background(), &dto.CreateWellnessServiceRequest{
		Name: "Community Walk",
		Fee:  decimal.Zero,
	})
	assert.NoError(t, err)
}

func TestUpdateServiceNotFound(t *testing.T) {
	u := newWellnessServiceUsecaseForTest(&MockWellnessServiceRepository{}, &MockAuditService{})

	_, err := u.UpdateService(context.Background(), uuid.New(), &dto.UpdateWellnessServiceRequest{
		Name: "Yoga Program",
		Fee:  decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteServiceWithReferences(t *testing.T) {
	id := uuid.New()
	serviceRepo := &MockWellnessServiceRepository{
		FindByIDFunc: func(ctx context.Context, got uuid.UUID) (*entity.WellnessService, error) {
			return &entity.WellnessService{ID: id, Name: "Yoga Program"}, nil
		},
		CountReferencesFunc: func(ctx context.Context, got uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	u := newWellnessServiceUsecaseForTest(serviceRepo, &MockAuditService{})

	err := u.DeleteService(context.Background(), id, false)
	assert.ErrorIs(t, err, ErrServiceHasReferences)
}

func TestDeleteServiceCascade(t *testing.T) {
	id := uuid.New()
	serviceRepo := &MockWellnessServiceRepository{
		FindByIDFunc: func(ctx context.Context, got uuid.UUID) (*entity.WellnessService, error) {
			return &entity.WellnessService{ID: id, Name: "Yoga Program"}, nil
		},
	}
	audit := &MockAuditService{}
	u := newWellnessServiceUsecaseForTest(serviceRepo, audit)

	err := u.DeleteService(context.Background(), id, true)
	assert.NoError(t, err)
	assert.Contains(t, audit.Actions, entity.AuditActionServiceDelete)
}

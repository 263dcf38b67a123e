package usecase

import (
	"context"
	"testing"
	"time"

	"wellness-clinic-service/config"
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/pkg/apperror"
	"wellness-clinic-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newAuthUsecaseForTest(
	patientRepo *MockPatientRepository,
	providerRepo *MockProviderRepository,
	tokenStore *MockTokenStore,
) *authUsecase {
	log := logrus.New()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	u := NewAuthUsecase(log, patientRepo, providerRepo, jwtService, tokenStore, &MockAuditService{}).(*authUsecase)
	u.hasher = fakeHasher{}
	return u
}

func TestRegisterPatient(t *testing.T) {
	var created *entity.Patient
	patientRepo := &MockPatientRepository{
		CreateFunc: func(ctx context.Context, p *entity.Patient) error {
			p.ID = uuid.New()
			created = p
			return nil
		},
	}
	u := newAuthUsecaseForTest(patientRepo, &MockProviderRepository{}, NewMockTokenStore())

	resp, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Password:    "supersecret",
		DateOfBirth: "1990-04-12",
	})
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, "hashed:supersecret", created.Password)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	patientRepo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Patient, error) {
			return &entity.Patient{ID: uuid.New(), Email: email}, nil
		},
	}
	u := newAuthUsecaseForTest(patientRepo, &MockProviderRepository{}, NewMockTokenStore())

	_, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestRegisterPatientBadDateOfBirth(t *testing.T) {
	u := newAuthUsecaseForTest(&MockPatientRepository{}, &MockProviderRepository{}, NewMockTokenStore())

	_, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Password:    "supersecret",
		DateOfBirth: "12-04-1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestLoginPatient(t *testing.T) {
	patientID := uuid.New()
	patientRepo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Patient, error) {
			return &entity.Patient{ID: patientID, Email: email, Password: "hashed:supersecret"}, nil
		},
	}
	store := NewMockTokenStore()
	u := newAuthUsecaseForTest(patientRepo, &MockProviderRepository{}, store)

	resp, err := u.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "supersecret"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotNil(t, resp.PatientID)
	assert.Equal(t, patientID, *resp.PatientID)
	assert.Nil(t, resp.ProviderID)
	assert.Len(t, store.Tokens, 2)
}

func TestLoginProviderFallback(t *testing.T) {
	providerID := uuid.New()
	providerRepo := &MockProviderRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Provider, error) {
			return &entity.Provider{ID: providerID, Email: email, Password: "hashed:supersecret"}, nil
		},
	}
	u := newAuthUsecaseForTest(&MockPatientRepository{}, providerRepo, NewMockTokenStore())

	resp, err := u.Login(context.Background(), &dto.LoginRequest{Email: "smith@example.com", Password: "supersecret"})
	assert.NoError(t, err)
	assert.NotNil(t, resp.ProviderID)
	assert.Equal(t, providerID, *resp.ProviderID)
	assert.Nil(t, resp.PatientID)
}

func TestLoginWrongPassword(t *testing.T) {
	patientRepo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Patient, error) {
			return &entity.Patient{ID: uuid.New(), Email: email, Password: "hashed:supersecret"}, nil
		},
	}
	u := newAuthUsecaseForTest(patientRepo, &MockProviderRepository{}, NewMockTokenStore())

	_, err := u.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	u := newAuthUsecaseForTest(&MockPatientRepository{}, &MockProviderRepository{}, NewMockTokenStore())

	_, err := u.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRotates(t *testing.T) {
	patientID := uuid.New()
	patientRepo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Patient, error) {
			return &entity.Patient{ID: patientID, Email: email, Password: "hashed:supersecret"}, nil
		},
	}
	store := NewMockTokenStore()
	u := newAuthUsecaseForTest(patientRepo, &MockProviderRepository{}, store)

	login, err := u.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "supersecret"})
	assert.NoError(t, err)

	refreshed, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.NotNil(t, refreshed.PatientID)

	// The old refresh token is single-use
	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	u := newAuthUsecaseForTest(&MockPatientRepository{}, &MockProviderRepository{}, NewMockTokenStore())

	_, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	patientID := uuid.New()
	patientRepo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Patient, error) {
			return &entity.Patient{ID: patientID, Email: email, Password: "hashed:supersecret"}, nil
		},
	}
	store := NewMockTokenStore()
	u := newAuthUsecaseForTest(patientRepo, &MockProviderRepository{}, store)

	_, err := u.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "supersecret"})
	assert.NoError(t, err)
	assert.Len(t, store.Tokens, 2)

	assert.NoError(t, u.Logout(context.Background(), patientID))
	assert.Empty(t, store.Tokens)
}

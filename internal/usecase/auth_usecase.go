package usecase

import (
	"context"
	"time"

	"wellness-clinic-service/internal/converter"
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/internal/domain/repository"
	"wellness-clinic-service/internal/service"
	"wellness-clinic-service/pkg/apperror"
	"wellness-clinic-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = apperror.Conflict("email already exists")
	ErrInvalidCredentials = apperror.Auth("invalid email or password")
	ErrInvalidToken       = apperror.Auth("invalid or expired token")
	ErrTokenRevoked       = apperror.Auth("token has been revoked")
	ErrInvalidDateFormat  = apperror.Validation("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error)
	RegisterProvider(ctx context.Context, req *dto.RegisterProviderRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, subjectID uuid.UUID) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	providerRepo repository.ProviderRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	auditService service.AuditService
	hasher       PasswordHasher
}

func NewAuthUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	providerRepo repository.ProviderRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		patientRepo:  patientRepo,
		providerRepo: providerRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		auditService: auditService,
		hasher:       bcryptHasher{},
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = parsed
	}

	existing, err := u.patientRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check patient email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashedPassword,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: dob,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &patient.ID, entity.AuditActionPatientRegister, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Audit write failed for patient register: %+v", err)
	}

	return &dto.RegisterResponse{
		ID:        patient.ID,
		Email:     patient.Email,
		CreatedAt: patient.CreatedAt,
	}, nil
}

func (u *authUsecase) RegisterProvider(ctx context.Context, req *dto.RegisterProviderRequest) (*dto.RegisterResponse, error) {
	existing, err := u.providerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check provider email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	provider := &entity.Provider{
		Name:           req.Name,
		Email:          req.Email,
		Password:       hashedPassword,
		Phone:          req.Phone,
		Specialization: req.Specialization,
	}

	if err := u.providerRepo.Create(ctx, provider); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create provider: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &provider.ID, entity.AuditActionProviderRegister, "provider", provider.ID.String(), converter.ProviderToResponse(provider)); err != nil {
		u.log.Warnf("Audit write failed for provider register: %+v", err)
	}

	return &dto.RegisterResponse{
		ID:        provider.ID,
		Email:     provider.Email,
		CreatedAt: provider.CreatedAt,
	}, nil
}

// Login authenticates against the patient directory first, then the
// provider directory. The issued token is bound to exactly one record.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	patient, err := u.patientRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient != nil {
		if !u.hasher.Compare(patient.Password, req.Password) {
			return nil, ErrInvalidCredentials
		}
		resp, err := u.issueTokens(ctx, patient.ID, jwt.SubjectPatient, patient.Email)
		if err != nil {
			return nil, err
		}
		resp.PatientID = &patient.ID
		if err := u.auditService.LogCreate(ctx, &patient.ID, entity.AuditActionPatientLogin, "patient", patient.ID.String(), nil); err != nil {
			u.log.Warnf("Audit write failed for patient login: %+v", err)
		}
		return resp, nil
	}

	provider, err := u.providerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find provider by email: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.hasher.Compare(provider.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	resp, err := u.issueTokens(ctx, provider.ID, jwt.SubjectProvider, provider.Email)
	if err != nil {
		return nil, err
	}
	resp.ProviderID = &provider.ID
	if err := u.auditService.LogCreate(ctx, &provider.ID, entity.AuditActionProviderLogin, "provider", provider.ID.String(), nil); err != nil {
		u.log.Warnf("Audit write failed for provider login: %+v", err)
	}
	return resp, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, subjectID uuid.UUID, subjectType jwt.SubjectType, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(subjectID, subjectType, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(subjectID, subjectType, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, subjectID, accessTokenID, jwt.AccessToken, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.tokenStore.Store(ctx, subjectID, refreshTokenID, jwt.RefreshToken, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes every token issued to the subject.
func (u *authUsecase) Logout(ctx context.Context, subjectID uuid.UUID) error {
	return u.tokenStore.RevokeAll(ctx, subjectID)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenStore.Exists(ctx, claims.SubjectID, claims.TokenID, jwt.RefreshToken)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single-use
	if err := u.tokenStore.Revoke(ctx, claims.SubjectID, claims.TokenID, jwt.RefreshToken); err != nil {
		return nil, err
	}

	resp, err := u.issueTokens(ctx, claims.SubjectID, claims.SubjectType, claims.Email)
	if err != nil {
		return nil, err
	}
	if claims.SubjectType == jwt.SubjectPatient {
		id := claims.SubjectID
		resp.PatientID = &id
	} else {
		id := claims.SubjectID
		resp.ProviderID = &id
	}
	return resp, nil
}

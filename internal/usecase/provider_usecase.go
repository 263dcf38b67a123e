package usecase

import (
	"context"

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
	ErrProviderNotFound      = apperror.NotFound("provider not found")
	ErrProviderHasReferences = apperror.Conflict("provider has appointments; pass cascade to delete them")
)

type ProviderUsecase interface {
	GetProvider(ctx context.Context, id uuid.UUID) (*dto.ProviderResponse, error)
	GetAllProviders(ctx context.Context) (*dto.ProviderListResponse, error)
	UpdateProvider(ctx context.Context, id uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error)
	DeleteProvider(ctx context.Context, id uuid.UUID, cascade bool) error
}

type providerUsecase struct {
	log          *logrus.Logger
	providerRepo repository.ProviderRepository
	auditService service.AuditService
}

func NewProviderUsecase(
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	auditService service.AuditService,
) ProviderUsecase {
	return &providerUsecase{
		log:          log,
		providerRepo: providerRepo,
		auditService: auditService,
	}
}

func (u *providerUsecase) GetProvider(ctx context.Context, id uuid.UUID) (*dto.ProviderResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", id, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return converter.ProviderToResponse(provider), nil
}

func (u *providerUsecase) GetAllProviders(ctx context.Context) (*dto.ProviderListResponse, error) {
	providers, err := u.providerRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list providers: %+v", err)
		return nil, err
	}
	return &dto.ProviderListResponse{
		Providers: converter.ProvidersToResponses(providers),
		Total:     len(providers),
	}, nil
}

func (u *providerUsecase) UpdateProvider(ctx context.Context, id uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	if err := requireOwner(ctx, id, jwt.SubjectProvider); err != nil {
		return nil, err
	}

	provider, err := u.providerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", id, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	if req.Email != provider.Email {
		existing, err := u.providerRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check provider email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	provider.Name = req.Name
	provider.Email = req.Email
	provider.Phone = req.Phone
	provider.Specialization = req.Specialization

	if err := u.providerRepo.Update(ctx, provider); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update provider %s: %+v", id, err)
		return nil, err
	}

	return converter.ProviderToResponse(provider), nil
}

func (u *providerUsecase) DeleteProvider(ctx context.Context, id uuid.UUID, cascade bool) error {
	provider, err := u.providerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", id, err)
		return err
	}
	if provider == nil {
		return ErrProviderNotFound
	}

	var affected int64
	if cascade {
		affected, err = u.providerRepo.DeleteCascade(ctx, id)
	} else {
		refs, countErr := u.providerRepo.CountReferences(ctx, id)
		if countErr != nil {
			u.log.Warnf("Failed to count provider references: %+v", countErr)
			return countErr
		}
		if refs > 0 {
			return ErrProviderHasReferences
		}
		affected, err = u.providerRepo.Delete(ctx, id)
	}
	if err != nil {
		if isForeignKeyError(err, "provider") {
			return ErrProviderHasReferences
		}
		u.log.Warnf("Failed to delete provider %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrProviderNotFound
	}

	if err := u.auditService.LogDelete(ctx, nil, entity.AuditActionProviderDelete, "provider", id.String(), converter.ProviderToResponse(provider)); err != nil {
		u.log.Warnf("Audit write failed for provider delete: %+v", err)
	}
	return nil
}

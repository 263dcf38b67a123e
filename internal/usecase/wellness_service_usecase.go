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
	ErrServiceNotFound      = apperror.NotFound("wellness service not found")
	ErrServiceHasReferences = apperror.Conflict("service has enrollments or payments; pass cascade to delete them")
	ErrNegativeFee          = apperror.Validation("fee must not be negative")
)

type WellnessServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateWellnessServiceRequest) (*dto.WellnessServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*dto.WellnessServiceResponse, error)
	GetAllServices(ctx context.Context) (*dto.WellnessServiceListResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateWellnessServiceRequest) (*dto.WellnessServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID, cascade bool) error
}

type wellnessServiceUsecase struct {
	log          *logrus.Logger
	serviceRepo  repository.WellnessServiceRepository
	auditService service.AuditService
}

func NewWellnessServiceUsecase(
	log *logrus.Logger,
	serviceRepo repository.WellnessServiceRepository,
	auditService service.AuditService,
) WellnessServiceUsecase {
	return &wellnessServiceUsecase{
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func (u *wellnessServiceUsecase) CreateService(ctx context.Context, req *dto.CreateWellnessServiceRequest) (*dto.WellnessServiceResponse, error) {
	if req.Fee.IsNegative() {
		return nil, ErrNegativeFee
	}

	svc := &entity.WellnessService{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.Duration,
		Fee:             req.Fee,
	}

	if err := u.serviceRepo.Create(ctx, svc); err != nil {
		u.log.Warnf("Failed to create wellness service: %+v", err)
		return nil, err
	}

	return converter.WellnessServiceToResponse(svc), nil
}

func (u *wellnessServiceUsecase) GetService(ctx context.Context, id uuid.UUID) (*dto.WellnessServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find wellness service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return converter.WellnessServiceToResponse(svc), nil
}

func (u *wellnessServiceUsecase) GetAllServices(ctx context.Context) (*dto.WellnessServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list wellness services: %+v", err)
		return nil, err
	}
	return &dto.WellnessServiceListResponse{
		Services: converter.WellnessServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *wellnessServiceUsecase) UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateWellnessServiceRequest) (*dto.WellnessServiceResponse, error) {
	if req.Fee.IsNegative() {
		return nil, ErrNegativeFee
	}

	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find wellness service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMinutes = req.Duration
	svc.Fee = req.Fee

	if err := u.serviceRepo.Update(ctx, svc); err != nil {
		u.log.Warnf("Failed to update wellness service %s: %+v", id, err)
		return nil, err
	}

	return converter.WellnessServiceToResponse(svc), nil
}

func (u *wellnessServiceUsecase) DeleteService(ctx context.Context, id uuid.UUID, cascade bool) error {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find wellness service %s: %+v", id, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	var affected int64
	if cascade {
		affected, err = u.serviceRepo.DeleteCascade(ctx, id)
	} else {
		refs, countErr := u.serviceRepo.CountReferences(ctx, id)
		if countErr != nil {
			u.log.Warnf("Failed to count service references: %+v", countErr)
			return countErr
		}
		if refs > 0 {
			return ErrServiceHasReferences
		}
		affected, err = u.serviceRepo.Delete(ctx, id)
	}
	if err != nil {
		if isForeignKeyError(err, "service") {
			return ErrServiceHasReferences
		}
		u.log.Warnf("Failed to delete wellness service %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	if err := u.auditService.LogDelete(ctx, nil, entity.AuditActionServiceDelete, "wellness_service", id.String(), converter.WellnessServiceToResponse(svc)); err != nil {
		u.log.Warnf("Audit write failed for service delete: %+v", err)
	}
	return nil
}

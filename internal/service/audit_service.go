package service

import (
	"context"

	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records an append-only trail of domain mutations. Audit
// failures are logged and swallowed by callers; they never fail the
// mutation itself.
type AuditService interface {
	LogCreate(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error
	Recent(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) write(ctx context.Context, actorID *uuid.UUID, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) LogCreate(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, actorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, actorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(ctx, actorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	return s.auditRepo.FindRecent(ctx, limit)
}

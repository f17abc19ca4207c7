package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/logger"
	"condoreserve-backend/internal/repository"
)

// auditRecorder writes snapshots from a background goroutine. A failed
// write is logged and dropped; the primary mutation is already committed.
type auditRecorder struct {
	auditRepo repository.AuditRepository
}

func NewAuditRecorder(auditRepo repository.AuditRepository) AuditRecorder {
	return &auditRecorder{auditRepo: auditRepo}
}

func (a *auditRecorder) RecordCreate(actorID int32, entityType, entityID string, after any) {
	a.record(actorID, domain.AuditActionCreate, entityType, entityID, nil, after)
}

func (a *auditRecorder) RecordUpdate(actorID int32, entityType, entityID string, before, after any) {
	a.record(actorID, domain.AuditActionUpdate, entityType, entityID, before, after)
}

func (a *auditRecorder) RecordDelete(actorID int32, entityType, entityID string, before any) {
	a.record(actorID, domain.AuditActionDelete, entityType, entityID, before, nil)
}

func (a *auditRecorder) record(actorID int32, action domain.AuditAction, entityType, entityID string, before, after any) {
	entry := &domain.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Before:     marshalSnapshot(before),
		After:      marshalSnapshot(after),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()
		if err := a.auditRepo.Create(ctx, entry); err != nil {
			logger.Error("Failed to write audit entry",
				"error", err,
				"action", action,
				"entity_type", entityType,
				"entity_id", entityID)
		}
	}()
}

func marshalSnapshot(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to marshal audit snapshot", "error", err)
		return nil
	}
	return data
}

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) ListEntries(ctx context.Context, actor domain.Actor, entityType string, page, pageSize int32) ([]domain.AuditEntry, int32, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrAdminOnly
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize
	return s.auditRepo.List(ctx, entityType, pageSize, offset)
}

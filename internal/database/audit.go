package database

import (
	"context"

	"lull-backoffice/internal/models"

	"go.uber.org/zap"
)

// RecordAudit writes an audit entry. Failures are logged, never returned:
// an audit write must not fail the action it describes.
func RecordAudit(ctx context.Context, s Store, logger *zap.Logger, userID uint, entity, entityID, action, details string) {
	if s == nil {
		return
	}
	entry := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := s.CreateAuditLog(ctx, &entry); err != nil {
		logger.Warn("failed to write audit log",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err))
	}
}

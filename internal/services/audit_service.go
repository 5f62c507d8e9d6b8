package services

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"debtpilot/internal/logger"
	"debtpilot/internal/models"
)

// emptyChanges replaces a change set that cannot be encoded.
var emptyChanges = datatypes.JSON("{}")

type auditService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db, log: logger.Get()}
}

// Log appends an audit entry. Audit failures never fail the request that
// triggered them; they are logged instead.
func (s *auditService) Log(userID string, action models.AuditAction, resource models.AuditResource, resourceID, ipAddress string, changes map[string]any) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resource,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      s.encode(action, changes),
	}

	if err := s.db.Create(entry).Error; err != nil {
		s.log.Errorw("failed to write audit entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resource,
			"resource_id", resourceID,
		)
	}
}

func (s *auditService) encode(action models.AuditAction, changes map[string]any) datatypes.JSON {
	if changes == nil {
		return nil
	}
	data, err := json.Marshal(changes)
	if err != nil {
		s.log.Warnw("audit changes not encodable", "action", action, "error", err)
		return emptyChanges
	}
	return datatypes.JSON(data)
}

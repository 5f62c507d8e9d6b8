package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditAction names a user mutation worth recording.
type AuditAction string

const (
	AuditCreateDebt       AuditAction = "CREATE_DEBT"
	AuditUpdateDebt       AuditAction = "UPDATE_DEBT"
	AuditDeactivateDebt   AuditAction = "DEACTIVATE_DEBT"
	AuditRecordPayment    AuditAction = "RECORD_PAYMENT"
	AuditCreateStrategy   AuditAction = "CREATE_STRATEGY"
	AuditActivateStrategy AuditAction = "ACTIVATE_STRATEGY"
)

// AuditResource is the kind of record an audit entry points at.
type AuditResource string

const (
	AuditResourceDebt     AuditResource = "debt"
	AuditResourcePayment  AuditResource = "debt_payment"
	AuditResourceStrategy AuditResource = "debt_strategy"
)

// AuditLog is an append-only record of a user mutation. Entries are never
// updated or deleted, so it does not embed Base.
type AuditLog struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UserID       string         `gorm:"not null;index" json:"user_id"`
	Action       AuditAction    `gorm:"not null" json:"action"`
	ResourceType AuditResource  `gorm:"not null" json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	IPAddress    string         `json:"ip_address"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
}

// BeforeCreate assigns the entry id.
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	return assignID(&a.ID)
}

package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"debtpilot/internal/uuid"
)

// Base holds the id and timestamps of mutable, soft-deletable records.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a UUIDv7 unless the record already carries a valid id.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	return assignID(&b.ID)
}

func assignID(id *string) error {
	if *id == "" {
		*id = uuid.New()
		return nil
	}
	if !uuid.IsValid(*id) {
		return fmt.Errorf("invalid record id %q", *id)
	}
	return nil
}

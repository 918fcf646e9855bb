package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionCreated AuditAction = "created"
	AuditActionUpdated AuditAction = "updated"
	AuditActionDeleted AuditAction = "deleted"
	AuditActionViewed  AuditAction = "viewed"
)

// AuditLog is an append-only record of who did what to which entity.
// Rows are never updated or deleted.
type AuditLog struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	Action     AuditAction `gorm:"size:20" json:"action"`
	EntityType string      `gorm:"index;size:100" json:"entity_type"` // "User", "ListeningSession", "Authentication", ...
	EntityID   uuid.UUID   `gorm:"type:uuid;index" json:"entity_id"`
	OldValues  *string     `gorm:"type:text" json:"old_values,omitempty"`
	NewValues  *string     `gorm:"type:text" json:"new_values,omitempty"`
	Timestamp  time.Time   `gorm:"index" json:"timestamp"`
	IPAddress  *string     `gorm:"size:45" json:"ip_address,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return nil
}

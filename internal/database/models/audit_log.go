package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditLog records a mutation to an agent or transaction. Changes holds a
// per-entity-type payload (old/new field values) as jsonb.
type AuditLog struct {
	BaseModel
	EntityType string          `json:"entity_type" gorm:"not null;size:40;index:idx_audit_entity"`
	EntityID   uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index:idx_audit_entity"`
	Action     AuditAction     `json:"action" gorm:"type:varchar(20);not null"`
	Actor      string          `json:"actor" gorm:"size:255"`
	Changes    json.RawMessage `json:"changes,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

package models

import "time"

// AuditLog records a mutation applied to the domain store
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"`
	Entity    string    `gorm:"not null;index" json:"entity"`
	EntityID  string    `gorm:"index" json:"entity_id"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// APIAuditModel mirrors the 'api_audit_log' table. Bodies are stored after
// sensitive-field masking; rows older than the retention window are GC'd.
type APIAuditModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID    *uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber  string     `gorm:"type:varchar(100);index"`
	Endpoint     string     `gorm:"type:varchar(255);not null"`
	Method       string     `gorm:"type:varchar(10);not null"`
	RequestBody  string     `gorm:"type:text"`
	ResponseBody string     `gorm:"type:text"`
	StatusCode   int
	Success      bool   `gorm:"not null"`
	ErrorMessage string `gorm:"type:varchar(2000)"`
	TokenTail    string `gorm:"type:varchar(10)"`
	DurationMS   int64
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (APIAuditModel) TableName() string {
	return "api_audit_log"
}

package model

import "time"

// VaultSettingModel mirrors the 'vault_settings' table, a single-row table
// holding the credential vault key for this deployment.
type VaultSettingModel struct {
	ID        int    `gorm:"primary_key"`
	VaultKey  string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VaultSettingModel) TableName() string {
	return "vault_settings"
}

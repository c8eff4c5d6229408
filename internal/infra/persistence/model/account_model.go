package model

import (
	"time"

	"github.com/google/uuid"
)

// CarrierAccountModel mirrors the 'carrier_accounts' table. PostgreSQL generates
// UUIDs via uuid_generate_v7(). Password holds the vault ciphertext, never plaintext.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CarrierAccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Username      string    `gorm:"type:varchar(255);unique;not null"`
	Password      string    `gorm:"type:text"`
	Active        bool      `gorm:"not null;default:true"`
	Token         string    `gorm:"type:text"`
	TokenExpiry   *time.Time
	WebhookToken  string `gorm:"type:varchar(255)"`
	CarrierUserID int64  `gorm:"not null;default:0"`
	CarrierPhone  string `gorm:"type:varchar(30)"`
	LastRefreshAt *time.Time
	RefreshCount  int    `gorm:"not null;default:0"`
	LastError     string `gorm:"type:text"`
	APICallCount  int64  `gorm:"column:api_call_count;not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Stores []*CarrierStoreModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (CarrierAccountModel) TableName() string {
	return "carrier_accounts"
}

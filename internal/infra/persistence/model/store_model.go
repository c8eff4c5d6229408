package model

import (
	"time"

	"github.com/google/uuid"
)

// CarrierStoreModel mirrors the 'carrier_stores' table. Rows are unique per
// (group_address_id, account_id); stores dropped from the carrier inventory
// are archived via Active rather than deleted.
type CarrierStoreModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_group_account,priority:2"`
	GroupAddressID int64     `gorm:"not null;uniqueIndex:idx_store_group_account,priority:1"`
	CustomerID     int64
	Name           string `gorm:"type:varchar(255)"`
	Phone          string `gorm:"type:varchar(50)"`
	Address        string `gorm:"type:text"`
	ProvinceID     int
	DistrictID     int
	WardsID        int
	IsDefault      bool `gorm:"not null;default:false"`
	Active         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarrierStoreModel) TableName() string {
	return "carrier_stores"
}

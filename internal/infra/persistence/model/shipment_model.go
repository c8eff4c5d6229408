package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentModel mirrors the 'shipments' table. Status stays NULL until the
// first carrier event is applied.
type ShipmentModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber        string     `gorm:"type:varchar(100);unique;not null"`
	AccountID          *uuid.UUID `gorm:"type:uuid;index"`
	StoreID            *uuid.UUID `gorm:"type:uuid"`
	FulfillmentID      *uuid.UUID `gorm:"type:uuid;index"`
	Status             *int
	StatusName         string `gorm:"type:varchar(255)"`
	ReceiverName       string `gorm:"type:varchar(255)"`
	MoneyCollection    float64
	MoneyTotal         float64
	MoneyTotalFee      float64
	MoneyFee           float64
	MoneyCollectionFee float64
	MoneyVAT           float64
	ExchangeWeight     float64
	KpiHt              float64
	ExpectedDelivery   *time.Time
	TokenTail          string `gorm:"type:varchar(16)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	History []*StatusHistoryModel `gorm:"foreignKey:ShipmentID"`
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}

// StatusHistoryModel mirrors the 'shipment_status_history' table. One row is
// appended per received event, whatever the engine decided about it.
type StatusHistoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      int       `gorm:"not null"`
	StatusName  string    `gorm:"type:varchar(255)"`
	Note        string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	IsReturning bool      `gorm:"not null;default:false"`
	Outcome     string    `gorm:"type:varchar(20);not null"`
	EventTime   *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StatusHistoryModel) TableName() string {
	return "shipment_status_history"
}

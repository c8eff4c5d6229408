package model

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentDocumentModel mirrors the 'fulfillment_documents' table.
type FulfillmentDocumentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Reference   string    `gorm:"type:varchar(100);not null"`
	OrderNumber string    `gorm:"type:varchar(100);index"`
	Stage       string    `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FulfillmentDocumentModel) TableName() string {
	return "fulfillment_documents"
}

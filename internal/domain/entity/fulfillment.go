package entity

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentStage is the coarse lifecycle bucket of a fulfillment document.
// Carrier status codes map onto these buckets as webhook events arrive.
type FulfillmentStage string

const (
	StageDraft          FulfillmentStage = "draft"
	StageWaitingWebhook FulfillmentStage = "waiting_webhook"
	StageCreated        FulfillmentStage = "created"
	StageDone           FulfillmentStage = "done"
	StageCanceled       FulfillmentStage = "canceled"
)

// FulfillmentDocument is the warehouse-side document a shipment fulfils.
// Inbound events are matched to it by Reference (ORDER_REFERENCE), falling
// back to OrderNumber, when no shipment record exists yet (e.g. the waybill
// was created outside this system).
type FulfillmentDocument struct {
	ID          uuid.UUID        // The Global Unique Identifier (GUID) for the document.
	Reference   string           // Internal document reference, e.g. a picking name.
	OrderNumber string           // Carrier waybill number assigned to this document.
	Stage       FulfillmentStage // Current lifecycle bucket.
	CreatedAt   time.Time        // Timestamp of when the document was created.
	UpdatedAt   time.Time        // Timestamp of the last stage change.
}

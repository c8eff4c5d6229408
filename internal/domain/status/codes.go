// Package status models the carrier's shipment status codes, the
// transitions allowed between them, and how they map onto fulfillment
// lifecycle buckets.
package status

import "vtpgate/internal/domain/entity"

// Carrier status codes referenced by name elsewhere in the codebase.
const (
	OrderRejected     = 101 // carrier rejected the order
	WaitingProcessing = 102 // order received, waiting for processing
	PickupAssigned    = 103 // assigned to a pickup courier
	PickupConfirmed   = 104
	PickupRescheduled = 105
	PickupFailed      = 106
	Draft             = 107 // order returned to draft by the carrier
	PickedUp          = 200
	CancelConfirmed   = 201 // cancellation confirmed by the carrier
	CancelRequested   = 202
	InTransit         = 300
	ArrivedHub        = 400
	OutForDelivery    = 500
	Delivered         = 501
	DeliveryFailed    = 502
	CustomerCancelled = 503
	ReturnConfirmed   = 504
	DeliveryPostponed = 505
	ReturnRequested   = 506
	OnHold            = 507
	Redelivery        = 508
	DeliveryIncident  = 509
	ReturnInTransit   = 515
	ReturnFailed      = 550
)

// Final holds the terminal status codes. Events arriving for a shipment
// already in one of these are recorded but never applied.
var Final = map[int]bool{
	OrderRejected:     true,
	CancelConfirmed:   true,
	Delivered:         true,
	CustomerCancelled: true,
	ReturnConfirmed:   true,
}

// Initial holds the codes a shipment without any status may accept as its
// first event.
var Initial = map[int]bool{
	OrderRejected:     true,
	WaitingProcessing: true,
	PickupAssigned:    true,
	PickupConfirmed:   true,
	Draft:             true,
}

// stages maps every known carrier status code onto a fulfillment
// lifecycle bucket.
var stages = map[int]entity.FulfillmentStage{
	OrderRejected:     entity.StageCanceled,
	WaitingProcessing: entity.StageWaitingWebhook,
	PickupAssigned:    entity.StageCreated,
	PickupConfirmed:   entity.StageCreated,
	PickupRescheduled: entity.StageCreated,
	PickupFailed:      entity.StageCreated,
	Draft:             entity.StageDraft,
	PickedUp:          entity.StageCreated,
	CancelConfirmed:   entity.StageCanceled,
	CancelRequested:   entity.StageCreated,
	InTransit:         entity.StageCreated,
	ArrivedHub:        entity.StageCreated,
	OutForDelivery:    entity.StageCreated,
	Delivered:         entity.StageDone,
	DeliveryFailed:    entity.StageCreated,
	CustomerCancelled: entity.StageCanceled,
	ReturnConfirmed:   entity.StageDone,
	DeliveryPostponed: entity.StageCreated,
	ReturnRequested:   entity.StageCreated,
	OnHold:            entity.StageCreated,
	Redelivery:        entity.StageCreated,
	DeliveryIncident:  entity.StageCreated,
	ReturnInTransit:   entity.StageCreated,
	ReturnFailed:      entity.StageCreated,
}

// Stage returns the lifecycle bucket for a carrier status code.
// Unknown codes report false and the document is left untouched.
func Stage(code int) (entity.FulfillmentStage, bool) {
	stage, ok := stages[code]

	return stage, ok
}

// Known reports whether the code appears in the carrier status catalogue.
func Known(code int) bool {
	_, ok := stages[code]

	return ok
}

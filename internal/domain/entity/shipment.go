package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoryOutcome records how a status event was handled for a shipment.
type HistoryOutcome string

const (
	// OutcomeApplied means the event changed the shipment status.
	OutcomeApplied HistoryOutcome = "applied"
	// OutcomeIgnored means the shipment was already in a final state.
	OutcomeIgnored HistoryOutcome = "ignored"
	// OutcomeRejected means the transition was not allowed from the current status.
	OutcomeRejected HistoryOutcome = "rejected"
)

// Shipment is one waybill created at (or reported by) the carrier.
// Status is nil until the first status event arrives; after that it holds
// the carrier's numeric status code.
type Shipment struct {
	ID                 uuid.UUID  // The Global Unique Identifier (GUID) for the shipment.
	OrderNumber        string     // The carrier waybill number (ORDER_NUMBER). Unique.
	AccountID          *uuid.UUID // Owning account, derived from the store when known.
	StoreID            *uuid.UUID // Sender store the waybill was created from.
	FulfillmentID      *uuid.UUID // Linked fulfillment document, if any.
	Status             *int       // Current carrier status code. Nil before the first event.
	StatusName         string     // Carrier-provided name of the current status.
	ReceiverName       string     // Full name of the receiver.
	MoneyCollection    float64    // COD amount to collect from the receiver.
	MoneyTotal         float64    // Total charge returned by the carrier.
	MoneyTotalFee      float64    // Base shipping fee.
	MoneyFee           float64    // Main service fee.
	MoneyCollectionFee float64    // COD collection fee.
	MoneyVAT           float64    // VAT portion of the charge.
	ExchangeWeight     float64    // Chargeable weight in grams.
	KpiHt              float64    // Carrier delivery KPI, in hours.
	ExpectedDelivery   *time.Time // Expected delivery time reported by the carrier. Nil when unknown.
	TokenTail          string     // Last characters of the API token that created the waybill.
	CreatedAt          time.Time  // Timestamp of when the shipment record was created.
	UpdatedAt          time.Time  // Timestamp of the last status change.
}

// IsFinal reports whether the shipment has reached a terminal status.
func (s *Shipment) IsFinal(final map[int]bool) bool {
	return s.Status != nil && final[*s.Status]
}

// StatusHistory is one recorded status event against a shipment,
// kept regardless of whether the event was applied.
type StatusHistory struct {
	ID          uuid.UUID      // The Global Unique Identifier (GUID) for the history row.
	ShipmentID  uuid.UUID      // The shipment this event belongs to.
	Status      int            // Carrier status code carried by the event.
	StatusName  string         // Carrier-provided status name.
	Note        string         // Free-form note from the event.
	Location    string         // Where the parcel was when the event fired.
	IsReturning bool           // Whether the parcel was returning to the sender.
	Outcome     HistoryOutcome // How the engine handled the event.
	EventTime   *time.Time     // Carrier timestamp of the event. Nil when unparseable.
	CreatedAt   time.Time      // Timestamp of when the row was recorded.
}

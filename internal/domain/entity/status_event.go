package entity

import "time"

// StatusEvent is one parsed carrier status update, normalized from the
// webhook wire format. OrderNumber is the only required field.
type StatusEvent struct {
	OrderNumber      string     // Carrier waybill number (ORDER_NUMBER).
	Reference        string     // Partner-side order reference, if provided.
	Status           int        // Carrier numeric status code.
	StatusName       string     // Carrier-provided status name.
	Note             string     // Free-form note attached to the event.
	Location         string     // Current location of the parcel, if reported.
	IsReturning      bool       // Whether the parcel is on its way back to the sender.
	ReceiverName     string     // Receiver full name reported with the event.
	MoneyCollection  float64    // COD amount reported with the event.
	MoneyFee         float64    // Service fee reported with the event.
	MoneyFeeCOD      float64    // COD collection fee reported with the event.
	MoneyVAT         float64    // VAT portion reported with the event.
	MoneyTotal       float64    // Total charge reported with the event.
	OrderPayment     int        // Carrier payment method code.
	ProductWeight    float64    // Weight reported with the event, in grams.
	OrderService     string     // Carrier service code.
	ExpectedDelivery *time.Time // Expected delivery time. Nil when absent or unparseable.
	EventTime        *time.Time // Carrier timestamp. Nil when absent or unparseable.
	Token            string     // TOKEN value carried by the webhook item, if any.
}

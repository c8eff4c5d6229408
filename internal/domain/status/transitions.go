package status

// transitions lists, for each non-final status, the codes a shipment may
// move to next. Final statuses have no outgoing edges.
var transitions = map[int][]int{
	WaitingProcessing: {OrderRejected, PickupAssigned, Draft},
	PickupAssigned:    {OrderRejected, PickupConfirmed, Draft, PickedUp, CancelConfirmed, CancelRequested},
	PickupConfirmed:   {PickupRescheduled, PickupFailed, Draft, PickedUp},
	PickupRescheduled: {PickedUp, CancelConfirmed, CancelRequested, PickupFailed},
	PickupFailed:      {Draft, CancelConfirmed},
	Draft:             {CancelConfirmed},
	PickedUp:          {CancelConfirmed, CancelRequested, InTransit},
	CancelRequested:   {InTransit, CancelConfirmed},
	InTransit:         {ArrivedHub, OutForDelivery, DeliveryIncident},
	ArrivedHub:        {OutForDelivery, InTransit, DeliveryIncident},
	OutForDelivery: {
		Delivered, DeliveryFailed, CustomerCancelled, DeliveryPostponed,
		ReturnRequested, OnHold, Redelivery, DeliveryIncident,
	},
	DeliveryFailed:    {CustomerCancelled, ReturnConfirmed, DeliveryPostponed, ReturnInTransit},
	DeliveryPostponed: {DeliveryFailed, ReturnConfirmed, Redelivery, ReturnInTransit},
	ReturnRequested:   {DeliveryPostponed, OnHold, Redelivery, ReturnFailed},
	OnHold:            {Delivered, ReturnRequested, Redelivery},
	Redelivery:        {Delivered, DeliveryPostponed, ReturnRequested, OnHold, DeliveryIncident, ReturnFailed},
	DeliveryIncident:  {OutForDelivery, Redelivery, ReturnFailed},
	ReturnInTransit:   {ReturnConfirmed},
	ReturnFailed:      {Delivered, DeliveryPostponed, ReturnRequested, OnHold, Redelivery},
}

// CanTransition reports whether a shipment currently at from may accept
// an event with code to. A nil from means the shipment has no status yet
// and only the initial set is accepted.
func CanTransition(from *int, to int) bool {
	if from == nil {
		return Initial[to]
	}
	if Final[*from] {
		return false
	}
	for _, next := range transitions[*from] {
		if next == to {
			return true
		}
	}

	return false
}

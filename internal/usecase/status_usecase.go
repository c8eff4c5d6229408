package usecase

import (
	"context"

	"vtpgate/internal/domain/entity"
)

// EventResult describes how a single status event was handled.
type EventResult struct {
	OrderNumber string
	Outcome     entity.HistoryOutcome
	// Created reports that the event materialized a shipment that
	// previously existed only as a fulfillment document.
	Created bool
}

// BatchResult aggregates the outcomes of a webhook delivery.
type BatchResult struct {
	Processed int
	Failed    int
}

// StatusUsecase applies carrier status events to local shipments.
type StatusUsecase interface {
	ProcessEvent(ctx context.Context, event *entity.StatusEvent) (*EventResult, error)
	ProcessBatch(ctx context.Context, events []entity.StatusEvent) (*BatchResult, error)
}

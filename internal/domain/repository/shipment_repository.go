package repository

import (
	"context"
	"errors"

	"vtpgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShipmentNotFound is a domain-specific error returned when a shipment is not found.
var ErrShipmentNotFound = errors.New("shipment not found")

// ShipmentRepository defines the standard operations for shipment persistence.
type ShipmentRepository interface {
	// FindByID retrieves a single shipment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)

	// FindByOrderNumber retrieves the shipment holding the carrier waybill number.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Shipment, error)

	// List retrieves shipments ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Shipment, error)

	// Create persists a new shipment entity to the storage.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// Update modifies an existing shipment entity in the storage.
	Update(ctx context.Context, shipment *entity.Shipment) error

	// AppendHistory records one status event against a shipment.
	AppendHistory(ctx context.Context, history *entity.StatusHistory) error

	// ListHistory retrieves a shipment's recorded events, oldest first.
	ListHistory(ctx context.Context, shipmentID uuid.UUID) ([]*entity.StatusHistory, error)
}

package repository

import (
	"context"
	"errors"

	"vtpgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFulfillmentNotFound is a domain-specific error returned when a fulfillment document is not found.
var ErrFulfillmentNotFound = errors.New("fulfillment document not found")

// FulfillmentRepository defines the standard operations for fulfillment document persistence.
type FulfillmentRepository interface {
	// FindByID retrieves a single document by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FulfillmentDocument, error)

	// FindByOrderNumber retrieves the document assigned the carrier waybill number.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.FulfillmentDocument, error)

	// FindByReference retrieves a document by its internal reference,
	// e.g. the picking name echoed back as ORDER_REFERENCE.
	FindByReference(ctx context.Context, reference string) (*entity.FulfillmentDocument, error)

	// Create persists a new document entity to the storage.
	Create(ctx context.Context, doc *entity.FulfillmentDocument) error

	// Update modifies an existing document entity in the storage.
	Update(ctx context.Context, doc *entity.FulfillmentDocument) error

	// UpdateStage moves the document into a lifecycle bucket.
	UpdateStage(ctx context.Context, id uuid.UUID, stage entity.FulfillmentStage) error
}

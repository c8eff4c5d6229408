// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vtpgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when a carrier account is not found.
var ErrAccountNotFound = errors.New("carrier account not found")

// AccountRepository defines the standard operations for carrier account persistence.
// Passwords are encrypted by the implementation before they reach storage.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarrierAccount, error)

	// FindByUsername retrieves a single account by its partner API login.
	FindByUsername(ctx context.Context, username string) (*entity.CarrierAccount, error)

	// ListActive retrieves all active accounts.
	ListActive(ctx context.Context) ([]*entity.CarrierAccount, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.CarrierAccount) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.CarrierAccount) error

	// UpdateToken persists a freshly obtained token grant and bumps the
	// refresh bookkeeping. It writes only those columns so concurrent
	// credential edits survive.
	UpdateToken(ctx context.Context, id uuid.UUID, grant *entity.TokenGrant) error

	// RecordRefreshFailure persists the message of a failed token refresh
	// and deactivates the account until an operator re-enables it.
	RecordRefreshFailure(ctx context.Context, id uuid.UUID, message string) error

	// Delete removes an account.
	Delete(ctx context.Context, id uuid.UUID) error
}

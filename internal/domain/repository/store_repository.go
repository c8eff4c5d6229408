package repository

import (
	"context"
	"errors"

	"vtpgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is a domain-specific error returned when a carrier store is not found.
var ErrStoreNotFound = errors.New("carrier store not found")

// StoreRepository defines the standard operations for carrier store persistence.
// Stores are unique per (GroupAddressID, AccountID).
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarrierStore, error)

	// FindByGroupAddress retrieves the store with the given carrier inventory
	// identifier under an account.
	FindByGroupAddress(ctx context.Context, accountID uuid.UUID, groupAddressID int64) (*entity.CarrierStore, error)

	// ListByAccount retrieves all stores of an account, active ones first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.CarrierStore, error)

	// Upsert creates the store or updates the existing row matched by
	// (GroupAddressID, AccountID).
	Upsert(ctx context.Context, store *entity.CarrierStore) error

	// ArchiveMissing marks every store of the account whose GroupAddressID is
	// not in keep as inactive. It returns the number of archived rows.
	ArchiveMissing(ctx context.Context, accountID uuid.UUID, keep []int64) (int64, error)

	// SetDefault marks the store as the account's default and clears the flag
	// on the account's other stores.
	SetDefault(ctx context.Context, accountID, storeID uuid.UUID) error
}

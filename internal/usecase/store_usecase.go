package usecase

import (
	"context"

	"github.com/google/uuid"

	"vtpgate/internal/domain/entity"
)

// SyncResult summarizes a store synchronization run.
type SyncResult struct {
	Synced   int
	Archived int64
}

// StoreUsecase keeps local pickup stores aligned with the carrier inventory.
type StoreUsecase interface {
	// SyncStores pulls the carrier inventory for the account, upserts every
	// entry and archives local stores the carrier no longer reports.
	SyncStores(ctx context.Context, accountID uuid.UUID) (*SyncResult, error)
	ListStores(ctx context.Context, accountID uuid.UUID) ([]*entity.CarrierStore, error)
	SetDefaultStore(ctx context.Context, storeID uuid.UUID) error
}

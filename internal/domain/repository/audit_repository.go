package repository

import (
	"context"
	"time"

	"vtpgate/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRepository defines the standard operations for the API audit trail.
type AuditRepository interface {
	// Create persists one audit entry.
	Create(ctx context.Context, entry *entity.AuditEntry) error

	// IncrementAccountCalls bumps the API call counter of an account.
	IncrementAccountCalls(ctx context.Context, accountID uuid.UUID) error

	// ListByAccount retrieves an account's entries, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AuditEntry, error)

	// ListByOrderNumber retrieves the entries recorded against a waybill,
	// newest first.
	ListByOrderNumber(ctx context.Context, orderNumber string, limit, offset int) ([]*entity.AuditEntry, error)

	// ListFailures retrieves failed entries across all accounts, newest first.
	ListFailures(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error)

	// DeleteOlderThan removes entries created before the cutoff.
	// It returns the number of deleted rows.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

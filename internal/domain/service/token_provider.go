package service

import (
	"context"

	"github.com/google/uuid"
)

// TokenProvider hands out usable partner API tokens for an account,
// refreshing them against the carrier when needed. Implementations must be
// safe for concurrent use across goroutines and across processes.
type TokenProvider interface {
	// GetToken returns a token valid for at least a short grace period.
	// With force set, the stored token is discarded and a fresh login is
	// performed even if the stored one still looks valid.
	GetToken(ctx context.Context, accountID uuid.UUID, force bool) (string, error)
}

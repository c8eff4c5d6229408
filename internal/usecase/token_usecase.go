// Package usecase contains the application business rules interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// TokenUsecase manages carrier session tokens across accounts.
type TokenUsecase interface {
	// GetToken returns a usable carrier token for the account, refreshing
	// it against the carrier when the cached one is missing or expiring.
	// force skips the cache and always performs a fresh login.
	GetToken(ctx context.Context, accountID uuid.UUID, force bool) (string, error)
}

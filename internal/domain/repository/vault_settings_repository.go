package repository

import "context"

// VaultSettingsRepository persists the deployment-wide credential vault key.
// The key is generated lazily on first use and never rotated automatically.
type VaultSettingsRepository interface {
	// GetKey retrieves the stored vault key. It returns an empty string,
	// without error, when no key has been persisted yet.
	GetKey(ctx context.Context) (string, error)

	// SaveKey persists the vault key. It is a no-op if a key already exists.
	SaveKey(ctx context.Context, key string) error
}

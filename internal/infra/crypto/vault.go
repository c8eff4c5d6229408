// Package crypto implements the credential vault used to keep carrier
// passwords out of plaintext storage.
package crypto

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"sync"

	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/errors"

	"github.com/google/uuid"
)

const keyPrefix = "vtp_encryption_"

// Vault obfuscates credentials with a repeating-key XOR over a key derived
// from a per-deployment identifier. This matches the storage format used by
// existing deployments; it is obfuscation against casual inspection, not
// cryptographic protection, so the key never leaves the database it was
// created in.
type Vault struct {
	settings repository.VaultSettingsRepository

	mu  sync.Mutex
	key []byte
}

// NewVault creates a vault backed by the given settings repository.
// The key is loaded, or generated and persisted, on first use.
func NewVault(settings repository.VaultSettingsRepository) service.CredentialVault {
	return &Vault{settings: settings}
}

// Encrypt implements service.CredentialVault.
func (v *Vault) Encrypt(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	key, err := v.loadKey(ctx)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(xorBytes([]byte(plaintext), key)), nil
}

// Decrypt implements service.CredentialVault.
func (v *Vault) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	key, err := v.loadKey(ctx)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "decode vault ciphertext")
	}

	return string(xorBytes(raw, key)), nil
}

func (v *Vault) loadKey(ctx context.Context) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key != nil {
		return v.key, nil
	}

	stored, err := v.settings.GetKey(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load vault key")
	}

	if stored == "" {
		if err := v.settings.SaveKey(ctx, DeriveKey(uuid.NewString())); err != nil {
			return nil, errors.Wrap(err, "persist vault key")
		}
		// Re-read so that a concurrent writer's key wins for everyone.
		stored, err = v.settings.GetKey(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "reload vault key")
		}
	}

	v.key = []byte(stored)

	return v.key, nil
}

// DeriveKey builds the vault key from a deployment identifier.
func DeriveKey(deploymentID string) string {
	sum := sha256.Sum256([]byte(keyPrefix + deploymentID))

	return hex.EncodeToString(sum[:])[:32]
}

func xorBytes(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}

	return out
}

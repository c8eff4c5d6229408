package service

import "context"

// CredentialVault encrypts carrier passwords at rest. The vault key is
// derived from a deployment identifier and persisted on first use, so
// ciphertexts survive restarts but do not travel between deployments.
type CredentialVault interface {
	// Encrypt returns the ciphertext for a plaintext credential.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt reverses Encrypt. Decrypting a value produced by another
	// deployment yields garbage, not an error.
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

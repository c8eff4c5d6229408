// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CarrierAccount represents one set of ViettelPost partner credentials.
// A deployment may hold several accounts; tokens are managed per account.
type CarrierAccount struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the account.
	Name          string     // Human-readable label shown to operators.
	Username      string     // Partner API login (usually an email address).
	Password      string     // Partner API password, decrypted from the credential vault.
	Active        bool       // Inactive accounts are skipped by token refresh and store sync.
	Token         string     // Current partner API bearer token, empty until first refresh.
	TokenExpiry   *time.Time // Expiry of Token. Nil when no token has been obtained yet.
	WebhookToken  string     // Expected TOKEN value on inbound webhook items. Empty disables the check.
	CarrierUserID int64      // Carrier-side user identifier reported at login, 0 until then.
	CarrierPhone  string     // Phone number the carrier reported at login.
	LastRefreshAt *time.Time // When the token was last refreshed successfully.
	RefreshCount  int        // Number of successful token refreshes.
	LastError     string     // Last refresh failure message, cleared on success.
	APICallCount  int64      // Number of carrier API calls made for this account.
	CreatedAt     time.Time  // Timestamp of when this account was registered.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// TokenGrant is the outcome of a successful carrier login. The repository
// persists it on the account in a single write.
type TokenGrant struct {
	Token  string    // Bearer token for subsequent calls.
	Expiry time.Time // Normalized token expiry.
	UserID int64     // Carrier-side user identifier.
	Phone  string    // Phone number the carrier has on file for the login.
}

// HasCredentials reports whether the account can attempt a login.
func (a *CarrierAccount) HasCredentials() bool {
	return a.Username != "" && a.Password != ""
}

// TokenValidUntil reports whether the stored token is usable at least
// until the given instant.
func (a *CarrierAccount) TokenValidUntil(t time.Time) bool {
	return a.Token != "" && a.TokenExpiry != nil && a.TokenExpiry.After(t)
}

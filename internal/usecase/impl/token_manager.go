// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "vtpgate/internal/delivery/context"
	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/usecase"
)

const (
	// tokenStaleAhead is how far before expiry the fast path treats a
	// cached token as stale and starts a refresh.
	tokenStaleAhead = 10 * time.Minute

	// tokenRefreshGrace is the tighter threshold applied after acquiring
	// the refresh lock, so a token a contending holder just refreshed is
	// reused instead of refreshed again.
	tokenRefreshGrace = 5 * time.Minute

	// refreshLockWait bounds how long a caller waits for a concurrent
	// refresh of the same account to finish.
	refreshLockWait = 10 * time.Second

	refreshLockPrefix = "vtp_token_refresh_"
)

// tokenManager implements the TokenUsecase interface. It is also the
// TokenProvider the carrier gateway pulls tokens from.
type tokenManager struct {
	accounts repository.AccountRepository
	auth     service.CarrierAuth
	locks    service.NamedLock
	logger   *slog.Logger
}

// NewTokenManager is the constructor for tokenManager.
func NewTokenManager(
	accounts repository.AccountRepository,
	auth service.CarrierAuth,
	locks service.NamedLock,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenManager{
		accounts: accounts,
		auth:     auth,
		locks:    locks,
		logger:   logger,
	}
}

// tokenProviderAdapter lets the carrier gateway consume the token manager
// through the narrower domain interface.
type tokenProviderAdapter struct {
	usecase.TokenUsecase
}

// NewTokenProvider exposes a TokenUsecase as the provider consumed by the
// carrier gateway.
func NewTokenProvider(tokens usecase.TokenUsecase) service.TokenProvider {
	return tokenProviderAdapter{TokenUsecase: tokens}
}

// log returns a request-scoped logger if available, otherwise falls back to the manager's logger.
func (m *tokenManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// GetToken returns a token valid for at least tokenStaleAhead, refreshing
// it under a cross-process lock when needed.
func (m *tokenManager) GetToken(ctx context.Context, accountID uuid.UUID, force bool) (string, error) {
	account, err := m.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", errors.Wrap(domainerrors.ErrAccountNotFound, accountID.String())
		}
		return "", errors.Wrap(err, "load account for token refresh")
	}
	if !account.Active {
		return "", errors.Wrap(domainerrors.ErrAccountInactive, account.Username)
	}

	now := time.Now()
	if !force && account.TokenValidUntil(now.Add(tokenStaleAhead)) {
		return account.Token, nil
	}
	if !account.HasCredentials() {
		return "", errors.Wrap(domainerrors.ErrMissingCredentials, account.Username)
	}

	key := refreshLockPrefix + accountID.String()
	acquired, err := m.locks.TryAcquire(ctx, key, refreshLockWait)
	if err != nil {
		return "", errors.Wrap(err, "acquire token refresh lock")
	}
	if !acquired {
		return m.tokenWithoutLock(ctx, accountID, force)
	}
	defer func() {
		if err := m.locks.Release(ctx, key); err != nil {
			m.log(ctx).Warn("Failed to release token refresh lock",
				slog.String("key", key), slog.Any("error", err))
		}
	}()

	// Another holder may have refreshed while we waited for the lock.
	account, err = m.accounts.FindByID(ctx, accountID)
	if err != nil {
		return "", errors.Wrap(err, "reload account under refresh lock")
	}
	if !force && account.TokenValidUntil(time.Now().Add(tokenRefreshGrace)) {
		return account.Token, nil
	}

	return m.refresh(ctx, account, force)
}

// refresh performs the carrier login and persists the new token. The caller
// must hold the refresh lock for the account.
func (m *tokenManager) refresh(ctx context.Context, account *entity.CarrierAccount, force bool) (string, error) {
	result, err := m.auth.Authenticate(ctx, account.Username, account.Password)
	if err != nil {
		m.log(ctx).Error("Carrier login failed",
			slog.String("username", account.Username), slog.Any("error", err))
		if recordErr := m.accounts.RecordRefreshFailure(ctx, account.ID, err.Error()); recordErr != nil {
			m.log(ctx).Warn("Failed to record refresh failure",
				slog.String("username", account.Username), slog.Any("error", recordErr))
		}
		return "", errors.Wrap(domainerrors.ErrTokenRefreshFailed, account.Username)
	}

	// Committed outside any surrounding transaction so other processes see
	// the token immediately.
	if err := m.accounts.UpdateToken(ctx, account.ID, result); err != nil {
		return "", errors.Wrap(err, "persist refreshed token")
	}

	m.log(ctx).Info("Carrier token refreshed",
		slog.String("username", account.Username),
		slog.String("tokenTail", tokenTail(result.Token)),
		slog.Time("expiry", result.Expiry))

	return result.Token, nil
}

// tokenWithoutLock handles the path where the refresh lock stayed busy for
// the whole wait. Whatever token the holder left behind is the best we have.
func (m *tokenManager) tokenWithoutLock(ctx context.Context, accountID uuid.UUID, force bool) (string, error) {
	account, err := m.accounts.FindByID(ctx, accountID)
	if err != nil {
		return "", errors.Wrap(err, "reload account after lock wait")
	}
	if account.Token != "" && !force {
		m.log(ctx).Warn("Token refresh lock busy, using stored token",
			slog.String("username", account.Username),
			slog.String("tokenTail", tokenTail(account.Token)))
		return account.Token, nil
	}
	return "", errors.Wrap(domainerrors.ErrTokenUnavailable, account.Username)
}

// tokenTail keeps only the last few characters of a token for logging.
func tokenTail(token string) string {
	const keep = 10
	if len(token) <= keep {
		return token
	}
	return "..." + token[len(token)-keep:]
}

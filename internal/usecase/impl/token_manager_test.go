package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/infra/lock"
	mockRepo "vtpgate/internal/mocks/repository"
	mockService "vtpgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validAccount(id uuid.UUID) *entity.CarrierAccount {
	expiry := time.Now().Add(12 * time.Hour)
	return &entity.CarrierAccount{
		ID:          id,
		Username:    "partner@example.com",
		Password:    "secret",
		Active:      true,
		Token:       "current-token",
		TokenExpiry: &expiry,
	}
}

func TestTokenManager_GetToken_CachedTokenStillValid(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	accounts.EXPECT().FindByID(ctx, accountID).Return(validAccount(accountID), nil)

	token, err := manager.GetToken(ctx, accountID, false)

	require.NoError(t, err)
	assert.Equal(t, "current-token", token)
}

func TestTokenManager_GetToken_SoonToExpireTakesLockButReusesToken(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	expiry := time.Now().Add(7 * time.Minute)
	account := validAccount(accountID)
	account.TokenExpiry = &expiry

	lockKey := refreshLockPrefix + accountID.String()
	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, lockKey, refreshLockWait).Return(true, nil)
	locks.EXPECT().Release(ctx, lockKey).Return(nil)

	token, err := manager.GetToken(ctx, accountID, false)

	require.NoError(t, err)
	assert.Equal(t, "current-token", token)
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenManager_GetToken_RefreshesExpiredToken(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	expired := time.Now().Add(-time.Hour)
	account := validAccount(accountID)
	account.TokenExpiry = &expired

	newExpiry := time.Now().Add(24 * time.Hour)
	lockKey := refreshLockPrefix + accountID.String()

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, lockKey, refreshLockWait).Return(true, nil)
	locks.EXPECT().Release(ctx, lockKey).Return(nil)
	auth.EXPECT().Authenticate(ctx, account.Username, account.Password).
		Return(&service.LoginResult{Token: "fresh-token", Expiry: newExpiry}, nil)
	accounts.EXPECT().UpdateToken(ctx, accountID, mock.MatchedBy(func(grant *entity.TokenGrant) bool {
		return grant.Token == "fresh-token" && grant.Expiry.Equal(newExpiry)
	})).Return(nil)

	token, err := manager.GetToken(ctx, accountID, false)

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestTokenManager_GetToken_ForceSkipsValidToken(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := validAccount(accountID)
	newExpiry := time.Now().Add(24 * time.Hour)
	lockKey := refreshLockPrefix + accountID.String()

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, lockKey, refreshLockWait).Return(true, nil)
	locks.EXPECT().Release(ctx, lockKey).Return(nil)
	auth.EXPECT().Authenticate(ctx, account.Username, account.Password).
		Return(&service.LoginResult{Token: "forced-token", Expiry: newExpiry}, nil)
	accounts.EXPECT().UpdateToken(ctx, accountID, mock.MatchedBy(func(grant *entity.TokenGrant) bool {
		return grant.Token == "forced-token" && grant.Expiry.Equal(newExpiry)
	})).Return(nil)

	token, err := manager.GetToken(ctx, accountID, true)

	require.NoError(t, err)
	assert.Equal(t, "forced-token", token)
}

func TestTokenManager_GetToken_LockBusyFallsBackToStoredToken(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	expired := time.Now().Add(-time.Hour)
	account := validAccount(accountID)
	account.TokenExpiry = &expired

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, refreshLockPrefix+accountID.String(), refreshLockWait).Return(false, nil)

	token, err := manager.GetToken(ctx, accountID, false)

	require.NoError(t, err)
	assert.Equal(t, "current-token", token)
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenManager_GetToken_LockBusyWithoutTokenFails(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := validAccount(accountID)
	account.Token = ""
	account.TokenExpiry = nil

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, refreshLockPrefix+accountID.String(), refreshLockWait).Return(false, nil)

	_, err := manager.GetToken(ctx, accountID, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenUnavailable)
}

func TestTokenManager_GetToken_LoginFailureRecordsAndFails(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	expired := time.Now().Add(-time.Hour)
	account := validAccount(accountID)
	account.TokenExpiry = &expired
	lockKey := refreshLockPrefix + accountID.String()

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, lockKey, refreshLockWait).Return(true, nil)
	locks.EXPECT().Release(ctx, lockKey).Return(nil)
	auth.EXPECT().Authenticate(ctx, account.Username, account.Password).
		Return(nil, assert.AnError)
	accounts.EXPECT().RecordRefreshFailure(ctx, accountID, mock.AnythingOfType("string")).Return(nil)

	_, err := manager.GetToken(ctx, accountID, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRefreshFailed)
	accounts.AssertNotCalled(t, "UpdateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenManager_GetToken_LoginFailureWithoutTokenFails(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := validAccount(accountID)
	account.Token = ""
	account.TokenExpiry = nil
	lockKey := refreshLockPrefix + accountID.String()

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil).Twice()
	locks.EXPECT().TryAcquire(ctx, lockKey, refreshLockWait).Return(true, nil)
	locks.EXPECT().Release(ctx, lockKey).Return(nil)
	auth.EXPECT().Authenticate(ctx, account.Username, account.Password).
		Return(nil, assert.AnError)
	accounts.EXPECT().RecordRefreshFailure(ctx, accountID, mock.AnythingOfType("string")).Return(nil)

	_, err := manager.GetToken(ctx, accountID, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRefreshFailed)
}

func TestTokenManager_GetToken_InactiveAccount(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	locks := mockService.NewMockNamedLock(t)
	manager := NewTokenManager(accounts, auth, locks, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := validAccount(accountID)
	account.Active = false

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	_, err := manager.GetToken(ctx, accountID, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestTokenManager_GetToken_ConcurrentCallersRefreshOnce(t *testing.T) {
	accounts := mockRepo.NewMockAccountRepository(t)
	auth := mockService.NewMockCarrierAuth(t)
	manager := NewTokenManager(accounts, auth, lock.NewMemory(), newDiscardLogger())

	accountID := uuid.New()
	expired := time.Now().Add(-time.Hour)
	newExpiry := time.Now().Add(24 * time.Hour)

	var mu sync.Mutex
	refreshed := false

	accounts.EXPECT().FindByID(mock.Anything, accountID).RunAndReturn(
		func(context.Context, uuid.UUID) (*entity.CarrierAccount, error) {
			account := validAccount(accountID)
			mu.Lock()
			defer mu.Unlock()
			if refreshed {
				account.Token = "fresh-token"
				account.TokenExpiry = &newExpiry
			} else {
				account.TokenExpiry = &expired
			}
			return account, nil
		})
	auth.EXPECT().Authenticate(mock.Anything, "partner@example.com", "secret").
		RunAndReturn(func(context.Context, string, string) (*service.LoginResult, error) {
			return &service.LoginResult{Token: "fresh-token", Expiry: newExpiry}, nil
		}).Once()
	accounts.EXPECT().UpdateToken(mock.Anything, accountID, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID, *entity.TokenGrant) error {
			mu.Lock()
			refreshed = true
			mu.Unlock()
			return nil
		}).Once()

	var wg sync.WaitGroup
	tokens := make([]string, 4)
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = manager.GetToken(context.Background(), accountID, false)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "fresh-token", tokens[i])
	}
}

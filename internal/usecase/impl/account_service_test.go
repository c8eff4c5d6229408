package impl

import (
	"context"
	"testing"
	"time"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	mockRepo "vtpgate/internal/mocks/repository"
	mockService "vtpgate/internal/mocks/service"
	"vtpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAccountService_CreateAccount_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockService.NewMockTokenProvider(t)
	svc := NewAccountService(txManager, tokens, newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByUsername(ctx, "partner@example.com").
				Return(nil, repository.ErrAccountNotFound)
			accountRepo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.CarrierAccount) bool {
				return a.Username == "partner@example.com" && a.Active && a.ID != uuid.Nil
			})).Return(nil)

			return fn(mockFactory)
		})

	account, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{
		Name:     "Main partner",
		Username: "partner@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Main partner", account.Name)
	assert.True(t, account.Active)
}

func TestAccountService_CreateAccount_DuplicateUsername(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockService.NewMockTokenProvider(t)
	svc := NewAccountService(txManager, tokens, newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByUsername(ctx, "partner@example.com").
				Return(&entity.CarrierAccount{ID: uuid.New(), Username: "partner@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{
		Name:     "Main partner",
		Username: "partner@example.com",
		Password: "secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_UpdateAccount_PasswordChangeDropsToken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockService.NewMockTokenProvider(t)
	svc := NewAccountService(txManager, tokens, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	expiry := time.Now().Add(12 * time.Hour)
	stored := &entity.CarrierAccount{
		ID:          accountID,
		Username:    "partner@example.com",
		Password:    "old-secret",
		Token:       "current-token",
		TokenExpiry: &expiry,
		Active:      true,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(stored, nil)
			accountRepo.EXPECT().Update(ctx, mock.MatchedBy(func(a *entity.CarrierAccount) bool {
				return a.Password == "new-secret" && a.Token == "" && a.TokenExpiry == nil
			})).Return(nil)

			return fn(mockFactory)
		})

	account, err := svc.UpdateAccount(ctx, accountID, &usecase.UpdateAccountInput{
		Password: strPtr("new-secret"),
	})

	require.NoError(t, err)
	assert.Empty(t, account.Token)
	assert.Nil(t, account.TokenExpiry)
}

func TestAccountService_UpdateAccount_NameOnlyKeepsToken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockService.NewMockTokenProvider(t)
	svc := NewAccountService(txManager, tokens, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	expiry := time.Now().Add(12 * time.Hour)
	stored := &entity.CarrierAccount{
		ID:          accountID,
		Username:    "partner@example.com",
		Token:       "current-token",
		TokenExpiry: &expiry,
		Active:      true,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(stored, nil)
			accountRepo.EXPECT().Update(ctx, mock.MatchedBy(func(a *entity.CarrierAccount) bool {
				return a.Name == "Renamed" && a.Token == "current-token"
			})).Return(nil)

			return fn(mockFactory)
		})

	account, err := svc.UpdateAccount(ctx, accountID, &usecase.UpdateAccountInput{
		Name: strPtr("Renamed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "current-token", account.Token)
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockService.NewMockTokenProvider(t)
	svc := NewAccountService(txManager, tokens, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	err := svc.DeleteAccount(ctx, accountID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_VerifyAccount_ForcesFreshLogin(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockService.NewMockTokenProvider(t)
	svc := NewAccountService(txManager, tokens, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()

	tokens.EXPECT().GetToken(ctx, accountID, true).Return("fresh-token", nil)

	err := svc.VerifyAccount(ctx, accountID)

	require.NoError(t, err)
}

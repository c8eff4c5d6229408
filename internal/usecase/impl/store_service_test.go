package impl

import (
	"context"
	"testing"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	mockRepo "vtpgate/internal/mocks/repository"
	mockService "vtpgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreService_SyncStores_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewStoreService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID, Username: "partner@example.com", Active: true}
	items := []service.InventoryItem{
		{GroupAddressID: 100, CustomerID: 991, Name: "Main warehouse", Address: "1 Pham Van Dong"},
		{GroupAddressID: 200, CustomerID: 991, Name: "Backup warehouse", Address: "2 Le Duan"},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		}).Once()

	gateway.EXPECT().ListInventory(ctx, account).Return(items, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)
			storeRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(s *entity.CarrierStore) bool {
				return s.AccountID == accountID && s.Active
			})).Return(nil).Twice()
			storeRepo.EXPECT().ArchiveMissing(ctx, accountID, []int64{100, 200}).Return(int64(1), nil)

			return fn(mockFactory)
		}).Once()

	result, err := svc.SyncStores(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, int64(1), result.Archived)
}

func TestStoreService_SyncStores_InactiveAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewStoreService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID, Username: "partner@example.com", Active: false}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	_, err := svc.SyncStores(ctx, accountID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	gateway.AssertNotCalled(t, "ListInventory")
}

func TestStoreService_ListStores_UnknownAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewStoreService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	_, err := svc.ListStores(ctx, accountID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestStoreService_SetDefaultStore_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewStoreService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	storeID := uuid.New()
	store := &entity.CarrierStore{ID: storeID, AccountID: accountID}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)
			storeRepo.EXPECT().FindByID(ctx, storeID).Return(store, nil)
			storeRepo.EXPECT().SetDefault(ctx, accountID, storeID).Return(nil)

			return fn(mockFactory)
		})

	err := svc.SetDefaultStore(ctx, storeID)

	require.NoError(t, err)
}

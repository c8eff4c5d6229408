package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "vtpgate/internal/delivery/context"
	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/usecase"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager repository.TransactionManager
	gateway   service.CarrierGateway
	logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	txManager repository.TransactionManager,
	gateway service.CarrierGateway,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		txManager: txManager,
		gateway:   gateway,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncStores pulls the carrier inventory and mirrors it locally. Entries
// the carrier stopped reporting are archived, never deleted.
func (srv *storeService) SyncStores(ctx context.Context, accountID uuid.UUID) (*usecase.SyncResult, error) {
	var account *entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !account.Active {
		return nil, errors.Wrap(domainerrors.ErrAccountInactive, account.Username)
	}

	items, err := srv.gateway.ListInventory(ctx, account)
	if err != nil {
		return nil, err
	}

	result := &usecase.SyncResult{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()
		keep := make([]int64, 0, len(items))
		for i := range items {
			item := &items[i]
			store := &entity.CarrierStore{
				ID:             uuid.New(),
				AccountID:      accountID,
				GroupAddressID: item.GroupAddressID,
				CustomerID:     item.CustomerID,
				Name:           item.Name,
				Phone:          item.Phone,
				Address:        item.Address,
				ProvinceID:     item.ProvinceID,
				DistrictID:     item.DistrictID,
				WardsID:        item.WardsID,
				Active:         true,
			}
			if err := storeRepo.Upsert(ctx, store); err != nil {
				return errors.Wrapf(err, "upsert store %d", item.GroupAddressID)
			}
			keep = append(keep, item.GroupAddressID)
			result.Synced++
		}

		archived, err := storeRepo.ArchiveMissing(ctx, accountID, keep)
		if err != nil {
			return errors.Wrap(err, "archive removed stores")
		}
		result.Archived = archived
		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store sync finished",
		slog.String("username", account.Username),
		slog.Int("synced", result.Synced),
		slog.Int64("archived", result.Archived))

	return result, nil
}

// ListStores retrieves an account's stores, active ones first.
func (srv *storeService) ListStores(ctx context.Context, accountID uuid.UUID) ([]*entity.CarrierStore, error) {
	var stores []*entity.CarrierStore
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()
		if _, err := findAccount(ctx, repoFactory.NewAccountRepository(), accountID); err != nil {
			return err
		}
		var err error
		stores, err = storeRepo.ListByAccount(ctx, accountID)
		return errors.Wrap(err, "list stores")
	})
	if err != nil {
		return nil, err
	}
	return stores, nil
}

// SetDefaultStore marks a store as its account's default pickup location.
func (srv *storeService) SetDefaultStore(ctx context.Context, storeID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()
		store, err := storeRepo.FindByID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, storeID.String())
			}
			return errors.Wrap(err, "load store")
		}
		return errors.Wrap(storeRepo.SetDefault(ctx, store.AccountID, store.ID), "set default store")
	})
}

package postgres

import (
	"context"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarrierStore, error) {
	var storeM model.CarrierStoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindByGroupAddress retrieves the store with the given carrier inventory identifier under an account.
func (repo *storeRepository) FindByGroupAddress(ctx context.Context, accountID uuid.UUID, groupAddressID int64) (*entity.CarrierStore, error) {
	var storeM model.CarrierStoreModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND group_address_id = ?", accountID, groupAddressID).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by group address")
	}

	return toStoreDomain(&storeM), nil
}

// ListByAccount retrieves all stores of an account, active ones first.
func (repo *storeRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.CarrierStore, error) {
	var storeMs []*model.CarrierStoreModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("active DESC, name").
		Find(&storeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.CarrierStore, 0, len(storeMs))
	for _, storeM := range storeMs {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Upsert creates the store or updates the existing row matched by (GroupAddressID, AccountID).
func (repo *storeRepository) Upsert(ctx context.Context, store *entity.CarrierStore) error {
	storeM := fromStoreDomain(store)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "group_address_id"}, {Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_id", "name", "phone", "address",
				"province_id", "district_id", "wards_id", "active", "updated_at",
			}),
		}).
		Create(storeM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// ArchiveMissing marks every store of the account whose GroupAddressID is not in keep as inactive.
func (repo *storeRepository) ArchiveMissing(ctx context.Context, accountID uuid.UUID, keep []int64) (int64, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.CarrierStoreModel{}).
		Where("account_id = ? AND active = ?", accountID, true)
	if len(keep) > 0 {
		tx = tx.Where("group_address_id NOT IN ?", keep)
	}

	result := tx.Update("active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to archive stores")
	}

	return result.RowsAffected, nil
}

// SetDefault marks the store as the account's default and clears the flag on
// the account's other stores. Defaults of other accounts are never touched.
func (repo *storeRepository) SetDefault(ctx context.Context, accountID, storeID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CarrierStoreModel{}).
		Where("account_id = ? AND id <> ?", accountID, storeID).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default stores")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CarrierStoreModel{}).
		Where("account_id = ? AND id = ?", accountID, storeID).
		Update("is_default", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set default store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.CarrierStoreModel) *entity.CarrierStore {
	return &entity.CarrierStore{
		ID:             data.ID,
		AccountID:      data.AccountID,
		GroupAddressID: data.GroupAddressID,
		CustomerID:     data.CustomerID,
		Name:           data.Name,
		Phone:          data.Phone,
		Address:        data.Address,
		ProvinceID:     data.ProvinceID,
		DistrictID:     data.DistrictID,
		WardsID:        data.WardsID,
		IsDefault:      data.IsDefault,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.CarrierStore) *model.CarrierStoreModel {
	return &model.CarrierStoreModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		GroupAddressID: data.GroupAddressID,
		CustomerID:     data.CustomerID,
		Name:           data.Name,
		Phone:          data.Phone,
		Address:        data.Address,
		ProvinceID:     data.ProvinceID,
		DistrictID:     data.DistrictID,
		WardsID:        data.WardsID,
		IsDefault:      data.IsDefault,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

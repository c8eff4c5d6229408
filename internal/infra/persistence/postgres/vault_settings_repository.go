package postgres

import (
	"context"

	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vaultSettingID pins the single settings row.
const vaultSettingID = 1

// vaultSettingsRepository implements the domain.VaultSettingsRepository interface using GORM.
type vaultSettingsRepository struct {
	db *gorm.DB
}

// NewVaultSettingsRepository is the constructor for vaultSettingsRepository.
func NewVaultSettingsRepository(db *gorm.DB) repository.VaultSettingsRepository {
	return &vaultSettingsRepository{db: db}
}

// GetKey retrieves the stored vault key, or an empty string when absent.
func (repo *vaultSettingsRepository) GetKey(ctx context.Context) (string, error) {
	var settingM model.VaultSettingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", vaultSettingID).First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to load vault key")
	}

	return settingM.VaultKey, nil
}

// SaveKey persists the vault key. A concurrent writer wins silently; the key
// already stored is the one every process ends up using.
func (repo *vaultSettingsRepository) SaveKey(ctx context.Context, key string) error {
	settingM := &model.VaultSettingModel{ID: vaultSettingID, VaultKey: key}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(settingM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save vault key")
	}

	return nil
}

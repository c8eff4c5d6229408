package postgres

import (
	"context"
	"time"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
// Passwords pass through the credential vault on the way in and out, so the
// database only ever sees ciphertext.
type accountRepository struct {
	db    *gorm.DB
	vault service.CredentialVault
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB, vault service.CredentialVault) repository.AccountRepository {
	return &accountRepository{db: db, vault: vault}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarrierAccount, error) {
	var accountM model.CarrierAccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return repo.toAccountDomain(ctx, &accountM)
}

// FindByUsername retrieves a single account by its partner API login.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.CarrierAccount, error) {
	var accountM model.CarrierAccountModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return repo.toAccountDomain(ctx, &accountM)
}

// ListActive retrieves all active accounts.
func (repo *accountRepository) ListActive(ctx context.Context) ([]*entity.CarrierAccount, error) {
	var accountMs []*model.CarrierAccountModel
	if err := repo.db.WithContext(ctx).Where("active = ?", true).Order("created_at").Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active accounts")
	}

	accounts := make([]*entity.CarrierAccount, 0, len(accountMs))
	for _, accountM := range accountMs {
		account, err := repo.toAccountDomain(ctx, accountM)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.CarrierAccount) error {
	accountM, err := repo.fromAccountDomain(ctx, account)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.CarrierAccount) error {
	accountM, err := repo.fromAccountDomain(ctx, account)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateToken persists a freshly obtained token grant, bumps the refresh
// bookkeeping and clears the last error. Only these columns are written so
// concurrent credential edits are not clobbered.
func (repo *accountRepository) UpdateToken(ctx context.Context, id uuid.UUID, grant *entity.TokenGrant) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CarrierAccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token":           grant.Token,
			"token_expiry":    grant.Expiry,
			"carrier_user_id": grant.UserID,
			"carrier_phone":   grant.Phone,
			"last_refresh_at": now,
			"refresh_count":   gorm.Expr("refresh_count + 1"),
			"last_error":      "",
			"updated_at":      now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// RecordRefreshFailure persists the message of a failed token refresh and
// flips the account inactive. Operators re-enable it after fixing the
// credentials.
func (repo *accountRepository) RecordRefreshFailure(ctx context.Context, id uuid.UUID, message string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CarrierAccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_error": message,
			"active":     false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record refresh failure")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CarrierAccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models,
// running passwords through the vault.

func (repo *accountRepository) toAccountDomain(ctx context.Context, data *model.CarrierAccountModel) (*entity.CarrierAccount, error) {
	password, err := repo.vault.Decrypt(ctx, data.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt account password")
	}

	return &entity.CarrierAccount{
		ID:            data.ID,
		Name:          data.Name,
		Username:      data.Username,
		Password:      password,
		Active:        data.Active,
		Token:         data.Token,
		TokenExpiry:   data.TokenExpiry,
		WebhookToken:  data.WebhookToken,
		CarrierUserID: data.CarrierUserID,
		CarrierPhone:  data.CarrierPhone,
		LastRefreshAt: data.LastRefreshAt,
		RefreshCount:  data.RefreshCount,
		LastError:     data.LastError,
		APICallCount:  data.APICallCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

func (repo *accountRepository) fromAccountDomain(ctx context.Context, data *entity.CarrierAccount) (*model.CarrierAccountModel, error) {
	cipher, err := repo.vault.Encrypt(ctx, data.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt account password")
	}

	return &model.CarrierAccountModel{
		ID:            data.ID,
		Name:          data.Name,
		Username:      data.Username,
		Password:      cipher,
		Active:        data.Active,
		Token:         data.Token,
		TokenExpiry:   data.TokenExpiry,
		WebhookToken:  data.WebhookToken,
		CarrierUserID: data.CarrierUserID,
		CarrierPhone:  data.CarrierPhone,
		LastRefreshAt: data.LastRefreshAt,
		RefreshCount:  data.RefreshCount,
		LastError:     data.LastError,
		APICallCount:  data.APICallCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

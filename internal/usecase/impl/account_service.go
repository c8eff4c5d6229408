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
	"vtpgate/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	tokens    usecase.TokenUsecase
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	tokens usecase.TokenUsecase,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		tokens:    tokens,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount registers a new set of carrier credentials. The password is
// encrypted by the repository before it reaches storage.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.CarrierAccount, error) {
	account := &entity.CarrierAccount{
		ID:           uuid.New(),
		Name:         input.Name,
		Username:     input.Username,
		Password:     input.Password,
		WebhookToken: input.WebhookToken,
		Active:       true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		_, err := accountRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAccountAlreadyExists, input.Username)
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "check username availability")
		}
		return errors.Wrap(accountRepo.Create(ctx, account), "create account")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Carrier account registered",
		slog.String("username", account.Username), slog.Any("account_id", account.ID))

	return account, nil
}

// UpdateAccount applies the non-nil fields of the input to the account.
// Changing the credentials drops the stored token so the next call logs in
// fresh.
func (srv *accountService) UpdateAccount(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.CarrierAccount, error) {
	var account *entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		var err error
		account, err = findAccount(ctx, accountRepo, id)
		if err != nil {
			return err
		}

		credentialsChanged := false
		if input.Name != nil {
			account.Name = *input.Name
		}
		if input.Username != nil && *input.Username != account.Username {
			if _, err := accountRepo.FindByUsername(ctx, *input.Username); err == nil {
				return errors.Wrap(domainerrors.ErrAccountAlreadyExists, *input.Username)
			} else if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "check username availability")
			}
			account.Username = *input.Username
			credentialsChanged = true
		}
		if input.Password != nil {
			account.Password = *input.Password
			credentialsChanged = true
		}
		if input.WebhookToken != nil {
			account.WebhookToken = *input.WebhookToken
		}
		if input.Active != nil {
			account.Active = *input.Active
		}
		if credentialsChanged {
			account.Token = ""
			account.TokenExpiry = nil
		}

		return errors.Wrap(accountRepo.Update(ctx, account), "update account")
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves one account by ID.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.CarrierAccount, error) {
	var account *entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves all active accounts.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.CarrierAccount, error) {
	var accounts []*entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		accounts, err = repoFactory.NewAccountRepository().ListActive(ctx)
		return errors.Wrap(err, "list accounts")
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// DeleteAccount removes an account and its credentials.
func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		if _, err := findAccount(ctx, accountRepo, id); err != nil {
			return err
		}
		return errors.Wrap(accountRepo.Delete(ctx, id), "delete account")
	})
}

// VerifyAccount proves the stored credentials by forcing a carrier login.
func (srv *accountService) VerifyAccount(ctx context.Context, id uuid.UUID) error {
	_, err := srv.tokens.GetToken(ctx, id, true)
	return err
}

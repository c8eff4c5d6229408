package usecase

import (
	"context"

	"github.com/google/uuid"

	"vtpgate/internal/domain/entity"
)

// CreateAccountInput carries the fields needed to register a carrier account.
type CreateAccountInput struct {
	Name         string `json:"name" validate:"required"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	WebhookToken string `json:"webhookToken"`
}

// UpdateAccountInput carries the mutable account fields. Nil fields are
// left untouched.
type UpdateAccountInput struct {
	Name         *string `json:"name"`
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	WebhookToken *string `json:"webhookToken"`
	Active       *bool   `json:"active"`
}

// AccountUsecase manages carrier account records and their credentials.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.CarrierAccount, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) (*entity.CarrierAccount, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.CarrierAccount, error)
	ListAccounts(ctx context.Context) ([]*entity.CarrierAccount, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	// VerifyAccount performs a forced carrier login to prove the stored
	// credentials still work.
	VerifyAccount(ctx context.Context, id uuid.UUID) error
}

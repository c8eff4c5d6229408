package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vtpgate/internal/delivery/http/response"
	"vtpgate/internal/domain/entity"
	"vtpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for carrier-account management handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create registers a new set of carrier credentials.
func (h *AccountHandler) Create(c echo.Context) error {
	var input *usecase.CreateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	account, err := h.uc.CreateAccount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, accountView(account))
}

// Update applies a partial update to an account.
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	var input *usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	account, err := h.uc.UpdateAccount(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountView(account))
}

// Get retrieves one account.
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountView(account))
}

// List retrieves all active accounts.
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, accountView(account))
	}

	return response.Success(c, http.StatusOK, views)
}

// Delete removes an account and its credentials.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"})
}

// Verify proves the stored credentials by forcing a fresh carrier login.
func (h *AccountHandler) Verify(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	if err := h.uc.VerifyAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Credentials verified"})
}

// AccountView is the account representation returned by the management API.
// Passwords and tokens never leave the service.
type AccountView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Username      string     `json:"username"`
	Active        bool       `json:"active"`
	HasToken      bool       `json:"has_token"`
	TokenExpiry   *time.Time `json:"token_expiry,omitempty"`
	WebhookToken  string     `json:"webhook_token,omitempty"`
	LastRefreshAt *time.Time `json:"last_refresh_at,omitempty"`
	RefreshCount  int        `json:"refresh_count"`
	LastError     string     `json:"last_error,omitempty"`
	APICallCount  int64      `json:"api_call_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func accountView(account *entity.CarrierAccount) *AccountView {
	return &AccountView{
		ID:            account.ID,
		Name:          account.Name,
		Username:      account.Username,
		Active:        account.Active,
		HasToken:      account.Token != "",
		TokenExpiry:   account.TokenExpiry,
		WebhookToken:  account.WebhookToken,
		LastRefreshAt: account.LastRefreshAt,
		RefreshCount:  account.RefreshCount,
		LastError:     account.LastError,
		APICallCount:  account.APICallCount,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

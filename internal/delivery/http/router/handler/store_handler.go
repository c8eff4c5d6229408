package handler

import (
	"log/slog"
	"net/http"

	"vtpgate/internal/delivery/http/response"
	"vtpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for carrier-store handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// Sync mirrors the carrier's inventory list into the local store table.
func (h *StoreHandler) Sync(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	result, err := h.uc.SyncStores(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// List retrieves an account's stores.
func (h *StoreHandler) List(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	stores, err := h.uc.ListStores(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// SetDefault marks one store as its account's default pickup location.
func (h *StoreHandler) SetDefault(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store id")
	}

	if err := h.uc.SetDefaultStore(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default store updated"})
}

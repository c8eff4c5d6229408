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

// AuditHandler exposes the carrier API audit trail to operators.
type AuditHandler struct {
	uc     usecase.AuditUsecase
	logger *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler, injected by Fx.
func NewAuditHandler(uc usecase.AuditUsecase, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByAccount retrieves an account's audit entries, newest first.
func (h *AuditHandler) ListByAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	limit := queryInt(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(c, "offset", 0)

	entries, err := h.uc.ListAccountAudit(c.Request().Context(), accountID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// ListByShipment retrieves the audit entries recorded against a waybill,
// newest first.
func (h *AuditHandler) ListByShipment(c echo.Context) error {
	limit := queryInt(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(c, "offset", 0)

	entries, err := h.uc.ListShipmentAudit(c.Request().Context(), c.Param("orderNumber"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// ListFailures retrieves failed audit entries across all accounts,
// newest first.
func (h *AuditHandler) ListFailures(c echo.Context) error {
	limit := queryInt(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(c, "offset", 0)

	entries, err := h.uc.ListFailedCalls(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// Purge drops audit entries older than the configured retention window.
func (h *AuditHandler) Purge(c echo.Context) error {
	deleted, err := h.uc.PurgeExpired(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted})
}

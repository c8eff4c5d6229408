package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vtpgate/internal/delivery/http/response"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShipmentHandler holds dependencies for waybill handlers.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Quote asks the carrier for a price on behalf of an account.
func (h *ShipmentHandler) Quote(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	var req *service.PriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price request")
	}

	result, err := h.uc.QuotePrice(c.Request().Context(), accountID, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Create registers a waybill with the carrier.
func (h *ShipmentHandler) Create(c echo.Context) error {
	var input *usecase.CreateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	shipment, err := h.uc.CreateShipment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shipment)
}

// Edit pushes corrected waybill details to the carrier.
func (h *ShipmentHandler) Edit(c echo.Context) error {
	var input *usecase.CreateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.EditShipment(c.Request().Context(), c.Param("orderNumber"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shipment updated"})
}

// actionRequest carries a carrier status action and its optional note.
type actionRequest struct {
	Action int    `json:"action" validate:"required"`
	Note   string `json:"note"`
}

// Action forwards a status action code, such as confirm or deliver-again.
func (h *ShipmentHandler) Action(c echo.Context) error {
	var req actionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ApplyOrderAction(c.Request().Context(), c.Param("orderNumber"), req.Action, req.Note); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Action requested"})
}

// cancelRequest carries the optional note attached to a cancellation.
type cancelRequest struct {
	Note string `json:"note"`
}

// Cancel asks the carrier to cancel a waybill.
func (h *ShipmentHandler) Cancel(c echo.Context) error {
	orderNumber := c.Param("orderNumber")

	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel request")
	}

	if err := h.uc.CancelShipment(c.Request().Context(), orderNumber, req.Note); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cancellation requested"})
}

// Get retrieves one shipment by its waybill number.
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.uc.GetShipment(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

// List retrieves shipments, newest first. limit defaults to 50, capped at 200.
func (h *ShipmentHandler) List(c echo.Context) error {
	limit := queryInt(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(c, "offset", 0)

	shipments, err := h.uc.ListShipments(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipments)
}

// History retrieves a shipment's recorded status events.
func (h *ShipmentHandler) History(c echo.Context) error {
	history, err := h.uc.ListHistory(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history)
}

// Label returns the carrier's label print page URL for a waybill.
func (h *ShipmentHandler) Label(c echo.Context) error {
	paperSize := queryInt(c, "paperSize", 1)

	url, err := h.uc.PrintLabel(c.Request().Context(), c.Param("orderNumber"), paperSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// queryInt reads an integer query parameter, falling back on absence or junk.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/status"
	"vtpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WebhookHandler receives carrier status-update callbacks.
type WebhookHandler struct {
	uc     usecase.StatusUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.StatusUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc:     uc,
		logger: logger,
	}
}

// flexInt tolerates carrier payloads that send numbers as JSON strings.
type flexInt int

func (v *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "parse integer %q", s)
	}
	*v = flexInt(n)
	return nil
}

// flexFloat tolerates carrier payloads that send numbers as JSON strings.
type flexFloat float64

func (v *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "parse number %q", s)
	}
	*v = flexFloat(f)
	return nil
}

// flexBool tolerates booleans sent as JSON strings or numbers. Absent,
// null, zero, and "false" variants all read as false.
type flexBool bool

func (v *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(string(data), `"`))
	switch s {
	case "", "null", "0", "false":
		*v = false
	default:
		*v = true
	}
	return nil
}

// eventEnvelope is one webhook item before unwrapping. The carrier sends
// either {"body":{"DATA":...,"TOKEN":...}}, {"DATA":...,"TOKEN":...}, or
// the bare event object.
type eventEnvelope struct {
	Body  *eventEnvelope  `json:"body"`
	Data  json.RawMessage `json:"DATA"`
	Token string          `json:"TOKEN"`
}

// eventPayload mirrors the carrier's status-update wire format.
type eventPayload struct {
	OrderNumber      string    `json:"ORDER_NUMBER"`
	OrderReference   string    `json:"ORDER_REFERENCE"`
	StatusName       string    `json:"STATUS_NAME"`
	OrderStatus      flexInt   `json:"ORDER_STATUS"`
	OrderStatusDate  string    `json:"ORDER_STATUSDATE"`
	MoneyCollection  flexFloat `json:"MONEY_COLLECTION"`
	MoneyTotalFee    flexFloat `json:"MONEY_TOTALFEE"`
	MoneyFeeCOD      flexFloat `json:"MONEY_FEECOD"`
	MoneyTotalVAT    flexFloat `json:"MONEY_TOTALVAT"`
	MoneyTotal       flexFloat `json:"MONEY_TOTAL"`
	OrderPayment     flexInt   `json:"ORDER_PAYMENT"`
	ReceiverFullname string    `json:"RECEIVER_FULLNAME"`
	ProductWeight    flexFloat `json:"PRODUCT_WEIGHT"`
	OrderService     string    `json:"ORDER_SERVICE"`
	ExpectedDelivery string    `json:"EXPECTED_DELIVERY_DATE"`
	Note             string    `json:"NOTE"`
	Location         string    `json:"LOCATION_CURRENTLY"`
	IsReturning      flexBool  `json:"IS_RETURNING"`
}

// OrderStatus ingests one carrier callback. The body is a single item or an
// array of items; each item may wrap the event in a body/DATA envelope.
// The carrier only understands a plain-text body, so no JSON envelope here.
func (h *WebhookHandler) OrderStatus(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "unreadable request body")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return c.String(http.StatusBadRequest, "empty request body")
	}

	var items []json.RawMessage
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return c.String(http.StatusBadRequest, "malformed JSON body")
		}
	} else {
		items = []json.RawMessage{raw}
	}

	ctx := c.Request().Context()
	processed := 0
	unauthorized := 0
	for _, item := range items {
		event, err := parseEvent(item)
		if err != nil {
			return c.String(http.StatusBadRequest, "malformed JSON body")
		}

		if _, err := h.uc.ProcessEvent(ctx, event); err != nil {
			switch {
			case errors.Is(err, domainerrors.ErrWebhookTokenMismatch):
				unauthorized++
				continue
			case errors.Is(err, domainerrors.ErrMissingOrderNumber),
				errors.Is(err, domainerrors.ErrUnknownOrder):
				// Acknowledged so the carrier stops re-delivering; the
				// decision is already audited.
				processed++
				continue
			default:
				return c.String(http.StatusInternalServerError, err.Error())
			}
		}
		processed++
	}

	if unauthorized > 0 && processed == 0 {
		return c.String(http.StatusUnauthorized, "webhook token mismatch")
	}

	return c.String(http.StatusOK, fmt.Sprintf("Processed %d items", processed))
}

// parseEvent unwraps one webhook item and normalizes it into a status event.
func parseEvent(item json.RawMessage) (*entity.StatusEvent, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(item, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode webhook item")
	}

	data := item
	token := envelope.Token
	if envelope.Body != nil {
		if len(envelope.Body.Data) > 0 {
			data = envelope.Body.Data
		}
		token = envelope.Body.Token
	} else if len(envelope.Data) > 0 {
		data = envelope.Data
	}

	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode webhook event")
	}

	return &entity.StatusEvent{
		OrderNumber:      payload.OrderNumber,
		Reference:        payload.OrderReference,
		Status:           int(payload.OrderStatus),
		StatusName:       payload.StatusName,
		Note:             payload.Note,
		Location:         payload.Location,
		IsReturning:      bool(payload.IsReturning),
		ReceiverName:     payload.ReceiverFullname,
		MoneyCollection:  float64(payload.MoneyCollection),
		MoneyFee:         float64(payload.MoneyTotalFee),
		MoneyFeeCOD:      float64(payload.MoneyFeeCOD),
		MoneyVAT:         float64(payload.MoneyTotalVAT),
		MoneyTotal:       float64(payload.MoneyTotal),
		OrderPayment:     int(payload.OrderPayment),
		ProductWeight:    float64(payload.ProductWeight),
		OrderService:     payload.OrderService,
		ExpectedDelivery: status.ParseEventTime(payload.ExpectedDelivery),
		EventTime:        status.ParseEventTime(payload.OrderStatusDate),
		Token:            token,
	}, nil
}

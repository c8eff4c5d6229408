package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	mockUsecase "vtpgate/internal/mocks/usecase"
	"vtpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postWebhook(t *testing.T, h *WebhookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook/order-status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.OrderStatus(c))

	return rec
}

func TestWebhookHandler_BareEvent(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *entity.StatusEvent) bool {
			return e.OrderNumber == "VTP123" && e.Status == 501 &&
				e.StatusName == "Delivered" && e.Reference == "WH001"
		})).
		Return(&usecase.EventResult{OrderNumber: "VTP123", Outcome: entity.OutcomeApplied}, nil)

	rec := postWebhook(t, h,
		`{"ORDER_NUMBER":"VTP123","ORDER_REFERENCE":"WH001","ORDER_STATUS":"501","STATUS_NAME":"Delivered"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed 1 items", rec.Body.String())
}

func TestWebhookHandler_NestedBodyEnvelope(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *entity.StatusEvent) bool {
			return e.OrderNumber == "VTP123" && e.Status == 200 && e.Token == "hook-secret"
		})).
		Return(&usecase.EventResult{OrderNumber: "VTP123", Outcome: entity.OutcomeApplied}, nil)

	rec := postWebhook(t, h,
		`{"body":{"DATA":{"ORDER_NUMBER":"VTP123","ORDER_STATUS":200},"TOKEN":"hook-secret"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed 1 items", rec.Body.String())
}

func TestWebhookHandler_TopLevelDataEnvelope(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *entity.StatusEvent) bool {
			return e.OrderNumber == "VTP456" && e.Token == "hook-secret"
		})).
		Return(&usecase.EventResult{OrderNumber: "VTP456", Outcome: entity.OutcomeApplied}, nil)

	rec := postWebhook(t, h,
		`{"DATA":{"ORDER_NUMBER":"VTP456","ORDER_STATUS":"104"},"TOKEN":"hook-secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_ArrayOfEvents(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(&usecase.EventResult{Outcome: entity.OutcomeApplied}, nil).
		Twice()

	rec := postWebhook(t, h,
		`[{"ORDER_NUMBER":"VTP1","ORDER_STATUS":103},{"ORDER_NUMBER":"VTP2","ORDER_STATUS":104}]`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed 2 items", rec.Body.String())
}

func TestWebhookHandler_EmptyBody(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	rec := postWebhook(t, h, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_MalformedJSON(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	rec := postWebhook(t, h, `{"ORDER_NUMBER":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_TokenMismatch(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrWebhookTokenMismatch)

	rec := postWebhook(t, h,
		`{"body":{"DATA":{"ORDER_NUMBER":"VTP123","ORDER_STATUS":200},"TOKEN":"wrong"}}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookHandler_UnknownOrderStillAcknowledged(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUnknownOrder)

	rec := postWebhook(t, h, `{"ORDER_NUMBER":"VTP404","ORDER_STATUS":200}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed 1 items", rec.Body.String())
}

func TestWebhookHandler_InternalError(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	rec := postWebhook(t, h, `{"ORDER_NUMBER":"VTP123","ORDER_STATUS":200}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), assert.AnError.Error())
}

func TestWebhookHandler_StringNumbersTolerated(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *entity.StatusEvent) bool {
			return e.Status == 501 && e.MoneyCollection == 150000 && e.ProductWeight == 500.5
		})).
		Return(&usecase.EventResult{Outcome: entity.OutcomeApplied}, nil)

	rec := postWebhook(t, h,
		`{"ORDER_NUMBER":"VTP123","ORDER_STATUS":"501","MONEY_COLLECTION":"150000","PRODUCT_WEIGHT":500.5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_ReceiverAndMoneyFields(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	expected := time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC)
	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *entity.StatusEvent) bool {
			return e.ReceiverName == "Tran Thi C" &&
				e.MoneyFeeCOD == 11000 && e.MoneyVAT == 2420 && e.OrderPayment == 3 &&
				e.ExpectedDelivery != nil && e.ExpectedDelivery.Equal(expected)
		})).
		Return(&usecase.EventResult{Outcome: entity.OutcomeApplied}, nil)

	rec := postWebhook(t, h,
		`{"ORDER_NUMBER":"VTP123","ORDER_STATUS":200,"RECEIVER_FULLNAME":"Tran Thi C",`+
			`"MONEY_FEECOD":"11000","MONEY_TOTALVAT":2420,"ORDER_PAYMENT":"3",`+
			`"EXPECTED_DELIVERY_DATE":"15/08/2025 09:30:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_LocationAndReturnFlag(t *testing.T) {
	uc := mockUsecase.NewMockStatusUsecase(t)
	h := NewWebhookHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessEvent(mock.Anything, mock.MatchedBy(func(e *entity.StatusEvent) bool {
			return e.Location == "Da Nang depot" && e.IsReturning
		})).
		Return(&usecase.EventResult{Outcome: entity.OutcomeApplied}, nil)

	rec := postWebhook(t, h,
		`{"ORDER_NUMBER":"VTP123","ORDER_STATUS":505,"LOCATION_CURRENTLY":"Da Nang depot","IS_RETURNING":"True"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

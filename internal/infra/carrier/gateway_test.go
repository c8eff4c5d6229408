package carrier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/service"
)

// fakeTokenProvider hands out canned tokens and counts forced refreshes.
type fakeTokenProvider struct {
	token        string
	forcedToken  string
	forcedCalls  int
	regularCalls int
}

func (f *fakeTokenProvider) GetToken(_ context.Context, _ uuid.UUID, force bool) (string, error) {
	if force {
		f.forcedCalls++

		return f.forcedToken, nil
	}
	f.regularCalls++

	return f.token, nil
}

func testAccount() *entity.CarrierAccount {
	return &entity.CarrierAccount{ID: uuid.New(), Username: "ops@example.com"}
}

func TestGatewayRefreshesTokenOnAuthRejection(t *testing.T) {
	t.Parallel()

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Header.Get("Token") == "stale-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":401,"error":true,"message":"token expired"}`))

			return
		}
		w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":[{"groupaddressId":7,"cusId":11,"name":"Depot","provinceId":1,"districtId":4,"wardsId":9}]}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	tokens := &fakeTokenProvider{token: "stale-token", forcedToken: "fresh-token"}
	gateway := NewGateway(client, tokens)

	items, err := gateway.ListInventory(context.Background(), testAccount())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].GroupAddressID)
	assert.Equal(t, "Depot", items[0].Name)

	assert.Equal(t, 2, requests)
	assert.Equal(t, 1, tokens.forcedCalls, "auth rejection triggers exactly one forced refresh")
}

func TestGatewayGetPriceNotApplicable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":400,"error":true,"message":"Không tìm thấy bảng giá"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	gateway := NewGateway(client, &fakeTokenProvider{token: "tok"})

	req := &service.PriceRequest{SenderProvince: 1, ReceiverProvince: 99, ProductWeight: 500}
	_, err := gateway.GetPrice(context.Background(), testAccount(), req)
	assert.ErrorIs(t, err, domainerrors.ErrPriceNotApplicable)
}

func TestGatewayGetPrintCode(t *testing.T) {
	t.Parallel()

	t.Run("code in message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":200,"error":false,"message":"PRINT-CODE-123","data":null}`))
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)
		gateway := NewGateway(client, &fakeTokenProvider{token: "tok"})

		code, err := gateway.GetPrintCode(context.Background(), testAccount(), "VTP123")
		require.NoError(t, err)
		assert.Equal(t, "PRINT-CODE-123", code)
	})

	t.Run("code in one-element data array", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`[{"message":"PRINT-CODE-456"}]`))
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)
		gateway := NewGateway(client, &fakeTokenProvider{token: "tok"})

		code, err := gateway.GetPrintCode(context.Background(), testAccount(), "VTP456")
		require.NoError(t, err)
		assert.Equal(t, "PRINT-CODE-456", code)
	})

	t.Run("missing code", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":200,"error":false,"message":"","data":{}}`))
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)
		gateway := NewGateway(client, &fakeTokenProvider{token: "tok"})

		_, err := gateway.GetPrintCode(context.Background(), testAccount(), "VTP789")
		assert.ErrorIs(t, err, domainerrors.ErrPrintCodeUnavailable)
	})
}

func TestPrintURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://partnerdev.viettelpost.vn/printing?type=1&bill=CODE&showPostage=1",
		PrintURL("test", "CODE", PaperA5),
	)
	assert.Equal(t,
		"https://partner.viettelpost.vn/printing?type=2&bill=CODE&showPostage=1",
		PrintURL("production", "CODE", 999),
	)
}

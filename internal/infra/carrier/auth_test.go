package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateHandshake(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + endpointLogin:
			assert.Empty(t, r.Header.Get("Token"))

			var req loginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ops@example.com", req.Username)

			w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{"token":"short-lived-token","expired":0,"userId":8812,"phone":"0912345678"}}`))
		case "/" + endpointOwnerConnect:
			assert.Equal(t, "short-lived-token", r.Header.Get("Token"))
			w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{"token":"long-lived-token","expired":1893456000}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	result, err := client.Authenticate(context.Background(), "ops@example.com", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, "long-lived-token", result.Token)
	assert.Equal(t, time.Unix(1893456000, 0), result.Expiry)
	assert.Equal(t, int64(8812), result.UserID)
	assert.Equal(t, "0912345678", result.Phone)
}

func TestAuthenticateFallsBackToShortToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + endpointLogin:
			w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{"token":"short-lived-token","expired":1893456000}}`))
		case "/" + endpointOwnerConnect:
			w.Write([]byte(`{"status":400,"error":true,"message":"not a partner account"}`))
		}
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	result, err := client.Authenticate(context.Background(), "ops@example.com", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, "short-lived-token", result.Token)
	assert.Equal(t, time.Unix(1893456000, 0), result.Expiry)
}

func TestAuthenticateNoToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{"expired":0}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Authenticate(context.Background(), "ops@example.com", "hunter2secret")
	assert.Error(t, err)
}

func TestNormalizeExpiry(t *testing.T) {
	t.Parallel()

	t.Run("zero gets default lifetime", func(t *testing.T) {
		t.Parallel()

		got := normalizeExpiry(0)
		assert.WithinDuration(t, time.Now().Add(defaultTokenLifetime), got, time.Minute)
	})

	t.Run("seconds pass through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, time.Unix(1893456000, 0), normalizeExpiry(1893456000))
	})

	t.Run("milliseconds are scaled down", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, time.Unix(1893456000, 0), normalizeExpiry(1893456000000))
	})
}

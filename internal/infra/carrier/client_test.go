package carrier

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtpgate/config"
	"vtpgate/internal/domain/entity"
)

// recordingAudit captures audit entries for assertions.
type recordingAudit struct {
	mu      sync.Mutex
	entries []*entity.AuditEntry
}

func (r *recordingAudit) Record(_ context.Context, entry *entity.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) all() []*entity.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.AuditEntry(nil), r.entries...)
}

func newTestClient(t *testing.T, serverURL string) (*Client, *recordingAudit) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Carrier = &config.CarrierConfig{
		Environment: "test",
		Retry: config.RetryConfig{
			MaxRetries:    3,
			BackoffFactor: 2,
			Timeout:       5 * time.Second,
			RetryOnStatus: []int{408, 500, 502, 503, 504},
		},
	}

	audit := &recordingAudit{}
	client := NewClient(cfg, slog.New(slog.DiscardHandler), audit)
	client.baseURL = serverURL
	client.sleep = func(time.Duration) {}

	return client, audit
}

func TestCallSuccess(t *testing.T) {
	t.Parallel()

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "secret-token", r.Header.Get("Token"))
		w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{"ORDER_NUMBER":"VTP123"}}`))
	}))
	defer server.Close()

	client, audit := newTestClient(t, server.URL)

	resp, err := client.call(context.Background(), http.MethodPost, endpointCreateOrder, "secret-token", nil, map[string]string{"ORDER_NUMBER": "VTP123"})
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.JSONEq(t, `{"ORDER_NUMBER":"VTP123"}`, string(resp.Data))

	entries := audit.all()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Success)
	assert.Equal(t, http.StatusOK, entries[0].StatusCode)
	assert.Equal(t, endpointCreateOrder, entries[0].Endpoint)
	assert.Equal(t, "cret-token", entries[0].TokenTail)
}

func TestCallRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{}}`))
	}))
	defer server.Close()

	client, audit := newTestClient(t, server.URL)

	_, err := client.call(context.Background(), http.MethodPost, endpointGetPrice, "", nil, map[string]int{"SENDER_PROVINCE": 1})
	require.NoError(t, err)
	assert.Equal(t, 3, requests)

	// Retries stay invisible to the audit trail: one entry per logical call.
	entries := audit.all()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Success)
}

func TestCallExhaustsRetryBudget(t *testing.T) {
	t.Parallel()

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":503,"error":true,"message":"down"}`))
	}))
	defer server.Close()

	client, audit := newTestClient(t, server.URL)

	_, err := client.call(context.Background(), http.MethodPost, endpointGetPrice, "", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 3, requests)

	entries := audit.all()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Equal(t, http.StatusServiceUnavailable, entries[0].StatusCode)
}

func TestCallAppLevelErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.Write([]byte(`{"status":400,"error":true,"message":"Khong tim thay bang gia","data":null}`))
	}))
	defer server.Close()

	client, audit := newTestClient(t, server.URL)

	_, err := client.call(context.Background(), http.MethodPost, endpointGetPrice, "", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, 1, requests, "application rejections are final answers")

	entries := audit.all()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
}

func TestCallListResponsePassthrough(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"groupaddressId":42,"name":"Depot"}]`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	resp, err := client.call(context.Background(), http.MethodGet, endpointInventory, "tok", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"groupaddressId":42,"name":"Depot"}]`, string(resp.Data))
}

func TestCallMasksSensitiveFieldsInAudit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":200,"error":false,"message":"OK","data":{"token":"abcdefghijklmnop"}}`))
	}))
	defer server.Close()

	client, audit := newTestClient(t, server.URL)

	payload := map[string]string{"USERNAME": "ops@example.com", "PASSWORD": "hunter2secret"}
	_, err := client.call(context.Background(), http.MethodPost, endpointLogin, "", nil, payload)
	require.NoError(t, err)

	entries := audit.all()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].RequestBody, "hun*******ret")
	assert.NotContains(t, entries[0].RequestBody, "hunter2secret")
	assert.Contains(t, entries[0].RequestBody, "ops@example.com")
	assert.Contains(t, entries[0].ResponseBody, "abc**********nop")
	assert.NotContains(t, entries[0].ResponseBody, "abcdefghijklmnop")
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***", MaskSecret("short"))
	assert.Equal(t, "***", MaskSecret("sixsix"))
	assert.Equal(t, "abc*efg", MaskSecret("abcdefg"))
	assert.Equal(t, "hun*******ret", MaskSecret("hunter2secret"))
}

func TestTokenTail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", TokenTail("short"))
	assert.Equal(t, "klmnopqrst", TokenTail("abcdefghijklmnopqrst"))
}

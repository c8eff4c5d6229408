// Package carrier implements the ViettelPost partner API integration:
// the low-level HTTP client with retry and auditing, the login handshake,
// and the authenticated gateway operations.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"strings"
	"time"

	"vtpgate/config"
	"vtpgate/internal/domain/entity"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/errors"

	"github.com/google/uuid"
)

const (
	tokenHeader        = "Token"
	maxErrorMessageLen = 2000
)

// sensitiveFields are masked in audited request and response bodies.
var sensitiveFields = map[string]bool{
	"PASSWORD":      true,
	"password":      true,
	"token":         true,
	"Token":         true,
	"client_secret": true,
}

// Client is the low-level partner API HTTP client. Every logical call gets
// exactly one audit entry describing its final outcome; transient retries
// surface only as log warnings.
type Client struct {
	baseURL     string
	environment string
	httpClient  *http.Client
	retry       config.RetryConfig
	logger      *slog.Logger
	audit       service.AuditTrail

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(time.Duration)
}

// NewClient creates the partner API client for the configured environment.
func NewClient(cfg *config.Config, logger *slog.Logger, audit service.AuditTrail) *Client {
	baseURL := baseURLTest
	if cfg.Carrier.Environment == "production" {
		baseURL = baseURLProduction
	}

	return &Client{
		baseURL:     baseURL,
		environment: cfg.Carrier.Environment,
		httpClient:  &http.Client{Timeout: cfg.Carrier.Retry.Timeout},
		retry:       cfg.Carrier.Retry,
		logger:      logger,
		audit:       audit,
		sleep:       time.Sleep,
	}
}

// call performs one logical partner API call: marshal, retry transient
// failures with exponential backoff, unwrap the response envelope, audit
// the final outcome. Application-level rejections are never retried.
func (c *Client) call(ctx context.Context, method, endpoint, token string, accountID *uuid.UUID, payload any) (*apiResponse, error) {
	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s request", endpoint)
		}
	}

	start := time.Now()

	var (
		httpStatus int
		respBody   []byte
		lastErr    error
	)

	for attempt := 0; attempt < c.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(math.Pow(c.retry.BackoffFactor, float64(attempt-1)) * float64(time.Second))
			c.logger.WarnContext(ctx, "retrying carrier API call",
				slog.String("endpoint", endpoint),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
				slog.Any("cause", attemptCause(httpStatus, lastErr)),
			)
			c.sleep(wait)
		}

		httpStatus, respBody, lastErr = c.doOnce(ctx, method, endpoint, token, reqBody)
		if lastErr != nil {
			continue
		}
		if slices.Contains(c.retry.RetryOnStatus, httpStatus) {
			continue
		}

		break
	}

	if lastErr != nil {
		err := errors.Wrapf(lastErr, "carrier API %s unreachable", endpoint)
		c.record(ctx, accountID, method, endpoint, token, reqBody, respBody, 0, false, err.Error(), start)

		return nil, err
	}

	resp, err := parseEnvelope(endpoint, httpStatus, respBody)
	if err != nil {
		c.record(ctx, accountID, method, endpoint, token, reqBody, respBody, httpStatus, false, err.Error(), start)

		return nil, err
	}

	c.record(ctx, accountID, method, endpoint, token, reqBody, respBody, httpStatus, true, "", start)

	return resp, nil
}

func (c *Client) doOnce(ctx context.Context, method, endpoint, token string, reqBody []byte) (int, []byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, bodyReader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "read response body")
	}

	return resp.StatusCode, body, nil
}

// parseEnvelope normalizes the partner response. Objects carry a status
// envelope; bare arrays are passed through as successful data.
func parseEnvelope(endpoint string, httpStatus int, body []byte) (*apiResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return &apiResponse{Status: 200, Data: trimmed}, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		if httpStatus >= 200 && httpStatus < 300 {
			return nil, errors.Wrapf(err, "decode %s response", endpoint)
		}

		return nil, &APIError{Endpoint: endpoint, HTTPStatus: httpStatus, Message: string(trimmed)}
	}

	if env.Status != 200 || env.Error || httpStatus >= 400 {
		return nil, &APIError{
			Endpoint:   endpoint,
			HTTPStatus: httpStatus,
			Status:     env.Status,
			Message:    env.Message,
		}
	}

	return &apiResponse{Status: env.Status, Message: env.Message, Data: env.Data}, nil
}

func (c *Client) record(ctx context.Context, accountID *uuid.UUID, method, endpoint, token string, reqBody, respBody []byte, httpStatus int, success bool, errMsg string, start time.Time) {
	if len(errMsg) > maxErrorMessageLen {
		errMsg = errMsg[:maxErrorMessageLen]
	}

	c.audit.Record(ctx, &entity.AuditEntry{
		AccountID:    accountID,
		Endpoint:     endpoint,
		TokenTail:    TokenTail(token),
		Method:       method,
		RequestBody:  MaskBody(reqBody),
		ResponseBody: MaskBody(respBody),
		StatusCode:   httpStatus,
		Success:      success,
		ErrorMessage: errMsg,
		DurationMS:   time.Since(start).Milliseconds(),
	})
}

func attemptCause(httpStatus int, err error) any {
	if err != nil {
		return err.Error()
	}

	return httpStatus
}

// MaskBody renders a JSON body with sensitive fields masked. Non-JSON
// bodies are returned unchanged.
func MaskBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}

	masked, err := json.Marshal(maskValue(decoded))
	if err != nil {
		return string(body)
	}

	return string(masked)
}

func maskValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		for key, value := range typed {
			if sensitiveFields[key] {
				if s, ok := value.(string); ok {
					typed[key] = MaskSecret(s)

					continue
				}
			}
			typed[key] = maskValue(value)
		}

		return typed
	case []any:
		for i, item := range typed {
			typed[i] = maskValue(item)
		}

		return typed
	default:
		return v
	}
}

// MaskSecret hides the middle of a secret, keeping three characters on
// each end when the value is long enough to stay unidentifiable.
func MaskSecret(s string) string {
	if len(s) <= 6 {
		return "***"
	}

	return s[:3] + strings.Repeat("*", len(s)-6) + s[len(s)-3:]
}

// TokenTail returns the last characters of a token for log lines and
// audit rows. The full token is never stored.
func TokenTail(token string) string {
	if len(token) <= 10 {
		return token
	}

	return token[len(token)-10:]
}

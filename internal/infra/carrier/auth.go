package carrier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vtpgate/internal/domain/service"
	"vtpgate/internal/errors"
)

const (
	// defaultTokenLifetime is assumed when the carrier reports no expiry.
	defaultTokenLifetime = 365 * 24 * time.Hour

	// millisecondEpochThreshold separates second from millisecond unix
	// timestamps; it corresponds to the year 2100 in seconds.
	millisecondEpochThreshold = 4102444800
)

// Authenticate implements service.CarrierAuth. It logs in for a short-lived
// token, then exchanges it for a long-lived partner token via ownerconnect.
// Accounts without partner access keep the short token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*service.LoginResult, error) {
	payload := &loginRequest{Username: username, Password: password}

	resp, err := c.call(ctx, http.MethodPost, endpointLogin, "", nil, payload)
	if err != nil {
		return nil, errors.Wrap(err, "carrier login")
	}

	short, err := decodeLoginData(resp.Data)
	if err != nil {
		return nil, errors.Wrap(err, "carrier login")
	}
	if short.Token == "" {
		return nil, errors.New("carrier login returned no token")
	}

	// The long-lived token requires a second call authenticated with the
	// short one. Some accounts are not enabled for it; they fall back to
	// the short token rather than failing.
	ownerResp, err := c.call(ctx, http.MethodPost, endpointOwnerConnect, short.Token, nil, payload)
	if err != nil {
		c.logger.WarnContext(ctx, "ownerconnect unavailable, using short-lived token",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)

		return loginResult(short, nil), nil
	}

	long, err := decodeLoginData(ownerResp.Data)
	if err != nil || long.Token == "" {
		return loginResult(short, nil), nil
	}

	return loginResult(long, short), nil
}

// loginResult maps a login payload to the domain grant. The ownerconnect
// response sometimes omits the identity fields, so the fallback payload
// fills the gaps.
func loginResult(data, fallback *loginData) *service.LoginResult {
	result := &service.LoginResult{
		Token:  data.Token,
		Expiry: normalizeExpiry(data.Expired),
		UserID: data.UserID,
		Phone:  data.Phone,
	}
	if fallback != nil {
		if result.UserID == 0 {
			result.UserID = fallback.UserID
		}
		if result.Phone == "" {
			result.Phone = fallback.Phone
		}
	}

	return result
}

func decodeLoginData(raw json.RawMessage) (*loginData, error) {
	var data loginData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "decode login data")
	}

	return &data, nil
}

// normalizeExpiry converts the carrier's expiry field to a time. Zero means
// the carrier reported none; values past the threshold are milliseconds.
func normalizeExpiry(expired int64) time.Time {
	if expired == 0 {
		return time.Now().Add(defaultTokenLifetime)
	}
	if expired > millisecondEpochThreshold {
		expired /= 1000
	}

	return time.Unix(expired, 0)
}

var _ service.CarrierAuth = (*Client)(nil)

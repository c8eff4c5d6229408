package carrier

import (
	"encoding/json"
	"fmt"
)

// Partner API base URLs per environment.
const (
	baseURLTest       = "https://partnerdev.viettelpost.vn/v2"
	baseURLProduction = "https://partner.viettelpost.vn/v2"
)

// Relative endpoint paths.
const (
	endpointLogin        = "user/Login"
	endpointOwnerConnect = "user/ownerconnect"
	endpointInventory    = "user/listInventory"
	endpointGetPrice     = "order/getPrice"
	endpointCreateOrder  = "order/createOrder"
	endpointEditOrder    = "order/edit"
	endpointUpdateOrder  = "order/UpdateOrder"
	endpointPrintCode    = "order/printing-code"
)

// apiResponse is the normalized partner API envelope. Responses are either
// a JSON object carrying status/message/data, or a bare JSON array (some
// listing endpoints), which is surfaced as Data with Status 200.
type apiResponse struct {
	Status  int             // Application-level status, 200 on success.
	Message string          // Human-readable message; holds the print code on printing endpoints.
	Data    json.RawMessage // Payload, already unwrapped from the envelope.
}

// envelope is the raw object form of a partner API response.
type envelope struct {
	Status  int             `json:"status"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is an application-level rejection from the partner API.
// These are final answers, never retried.
type APIError struct {
	Endpoint   string // Relative endpoint the call hit.
	HTTPStatus int    // Transport status of the response.
	Status     int    // Envelope status, when present.
	Message    string // Carrier-provided message.
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("carrier API %s rejected: status=%d message=%s", e.Endpoint, e.status(), e.Message)
}

func (e *APIError) status() int {
	if e.Status != 0 {
		return e.Status
	}

	return e.HTTPStatus
}

// IsAuthError reports whether the carrier rejected the call because the
// token is missing, invalid or expired.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError) //nolint:errorlint // APIError is never wrapped by the client.
	if !ok {
		return false
	}

	return apiErr.HTTPStatus == 401 || apiErr.Status == 401
}

// loginRequest is the credential payload for both login endpoints.
type loginRequest struct {
	Username string `json:"USERNAME"`
	Password string `json:"PASSWORD"`
}

// loginData is the payload of a successful login or ownerconnect.
type loginData struct {
	UserID  int64  `json:"userId"`
	Token   string `json:"token"`
	Expired int64  `json:"expired"`
	Phone   string `json:"phone"`
}

// inventoryItem is one row of the partner inventory listing.
type inventoryItem struct {
	GroupAddressID int64  `json:"groupaddressId"`
	CustomerID     int64  `json:"cusId"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ProvinceID     int    `json:"provinceId"`
	DistrictID     int    `json:"districtId"`
	WardsID        int    `json:"wardsId"`
}

// updateOrderRequest drives the waybill status-update endpoint.
type updateOrderRequest struct {
	Type        int    `json:"TYPE"`
	OrderNumber string `json:"ORDER_NUMBER"`
	Note        string `json:"NOTE"`
}

// printCodeRequest asks for a one-time label printing code.
type printCodeRequest struct {
	OrderArray []string `json:"ORDER_ARRAY"`
	ExpiryTime int64    `json:"EXPIRY_TIME"`
}

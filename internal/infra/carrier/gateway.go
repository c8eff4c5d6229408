package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/errors"
)

// printCodeLifetime bounds the validity of a requested label print code.
const printCodeLifetime = 2 * time.Hour

// Gateway implements service.CarrierGateway. It resolves tokens through the
// TokenProvider and retries a call once with a forced refresh when the
// carrier rejects the token.
type Gateway struct {
	client *Client
	tokens service.TokenProvider
}

// NewGateway is the constructor for Gateway.
func NewGateway(client *Client, tokens service.TokenProvider) *Gateway {
	return &Gateway{client: client, tokens: tokens}
}

// authedCall performs one gateway call, refreshing the token once on an
// auth rejection.
func (g *Gateway) authedCall(ctx context.Context, method, endpoint string, account *entity.CarrierAccount, payload any) (*apiResponse, error) {
	token, err := g.tokens.GetToken(ctx, account.ID, false)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.call(ctx, method, endpoint, token, &account.ID, payload)
	if err == nil || !IsAuthError(err) {
		return resp, err
	}

	token, err = g.tokens.GetToken(ctx, account.ID, true)
	if err != nil {
		return nil, err
	}

	return g.client.call(ctx, method, endpoint, token, &account.ID, payload)
}

// ListInventory fetches the account's sender locations.
func (g *Gateway) ListInventory(ctx context.Context, account *entity.CarrierAccount) ([]service.InventoryItem, error) {
	resp, err := g.authedCall(ctx, http.MethodGet, endpointInventory, account, nil)
	if err != nil {
		return nil, err
	}

	var rows []inventoryItem
	if err := json.Unmarshal(resp.Data, &rows); err != nil {
		return nil, errors.Wrap(err, "decode inventory listing")
	}

	items := make([]service.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, service.InventoryItem{
			GroupAddressID: row.GroupAddressID,
			CustomerID:     row.CustomerID,
			Name:           row.Name,
			Phone:          row.Phone,
			Address:        row.Address,
			ProvinceID:     row.ProvinceID,
			DistrictID:     row.DistrictID,
			WardsID:        row.WardsID,
		})
	}

	return items, nil
}

// GetPrice quotes a shipment. An itinerary the carrier does not serve is
// surfaced as a domain error rather than a raw carrier message.
func (g *Gateway) GetPrice(ctx context.Context, account *entity.CarrierAccount, req *service.PriceRequest) (*service.PriceResult, error) {
	resp, err := g.authedCall(ctx, http.MethodPost, endpointGetPrice, account, req)
	if err != nil {
		if isPriceNotApplicable(err) {
			return nil, domainerrors.ErrPriceNotApplicable
		}

		return nil, err
	}

	var result service.PriceResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, errors.Wrap(err, "decode price quote")
	}

	return &result, nil
}

// CreateOrder registers a waybill.
func (g *Gateway) CreateOrder(ctx context.Context, account *entity.CarrierAccount, req *service.CreateOrderRequest) (*service.CreateOrderResult, error) {
	resp, err := g.authedCall(ctx, http.MethodPost, endpointCreateOrder, account, req)
	if err != nil {
		return nil, err
	}

	var result service.CreateOrderResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, errors.Wrap(err, "decode create order response")
	}

	return &result, nil
}

// EditOrder updates the details of an existing waybill.
func (g *Gateway) EditOrder(ctx context.Context, account *entity.CarrierAccount, req *service.CreateOrderRequest) error {
	_, err := g.authedCall(ctx, http.MethodPost, endpointEditOrder, account, req)

	return err
}

// UpdateOrderStatus applies a status action to a waybill.
func (g *Gateway) UpdateOrderStatus(ctx context.Context, account *entity.CarrierAccount, orderNumber string, action int, note string) error {
	payload := &updateOrderRequest{Type: action, OrderNumber: orderNumber, Note: note}
	_, err := g.authedCall(ctx, http.MethodPost, endpointUpdateOrder, account, payload)

	return err
}

// GetPrintCode fetches the one-time code used to open the label print page.
// The carrier answers with the code in the envelope message, and the data
// payload is either an object or a one-element array.
func (g *Gateway) GetPrintCode(ctx context.Context, account *entity.CarrierAccount, orderNumber string) (string, error) {
	payload := &printCodeRequest{
		OrderArray: []string{orderNumber},
		ExpiryTime: time.Now().Add(printCodeLifetime).UnixMilli(),
	}

	resp, err := g.authedCall(ctx, http.MethodPost, endpointPrintCode, account, payload)
	if err != nil {
		return "", err
	}

	if code := extractPrintCode(resp); code != "" {
		return code, nil
	}

	return "", domainerrors.ErrPrintCodeUnavailable
}

// PrintURL builds the label print page URL for a print code.
func (g *Gateway) PrintURL(code string, paperSize int) string {
	return PrintURL(g.client.environment, code, paperSize)
}

func extractPrintCode(resp *apiResponse) string {
	if resp.Message != "" {
		return resp.Message
	}

	// Older responses bury the code in the data payload.
	var single struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Data, &single); err == nil && single.Message != "" {
		return single.Message
	}

	var list []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Data, &list); err == nil && len(list) > 0 {
		return list[0].Message
	}

	return ""
}

func isPriceNotApplicable(err error) bool {
	apiErr, ok := err.(*APIError) //nolint:errorlint // APIError is never wrapped by the client.
	if !ok {
		return false
	}

	msg := strings.ToLower(apiErr.Message)

	return strings.Contains(msg, "bảng giá") || strings.Contains(msg, "price")
}

var _ service.CarrierGateway = (*Gateway)(nil)

package service

import (
	"context"

	"vtpgate/internal/domain/entity"
)

// LoginResult is the outcome of a partner API authentication handshake.
type LoginResult = entity.TokenGrant

// InventoryItem is one sender location from the partner inventory listing.
type InventoryItem struct {
	GroupAddressID int64  // Carrier-side inventory identifier.
	CustomerID     int64  // Carrier-side customer identifier.
	Name           string // Store display name.
	Phone          string // Contact phone.
	Address        string // Full pickup address text.
	ProvinceID     int    // Carrier province identifier.
	DistrictID     int    // Carrier district identifier.
	WardsID        int    // Carrier ward identifier.
}

// PriceRequest asks the carrier to quote a shipment.
type PriceRequest struct {
	SenderProvince   int     `json:"SENDER_PROVINCE"`
	SenderDistrict   int     `json:"SENDER_DISTRICT"`
	ReceiverProvince int     `json:"RECEIVER_PROVINCE"`
	ReceiverDistrict int     `json:"RECEIVER_DISTRICT"`
	ProductType      string  `json:"PRODUCT_TYPE"`
	ProductWeight    float64 `json:"PRODUCT_WEIGHT"`
	ProductPrice     float64 `json:"PRODUCT_PRICE"`
	MoneyCollection  float64 `json:"MONEY_COLLECTION"`
	OrderService     string  `json:"ORDER_SERVICE"`
	OrderServiceAdd  string  `json:"ORDER_SERVICE_ADD"`
	NationalType     int     `json:"NATIONAL_TYPE"`
}

// PriceResult is the carrier's quote for a shipment.
type PriceResult struct {
	MoneyTotal    float64 `json:"MONEY_TOTAL"`
	MoneyTotalFee float64 `json:"MONEY_TOTAL_FEE"`
	MoneyFee      float64 `json:"MONEY_FEE"`
	MoneyVAT      float64 `json:"MONEY_VAT"`
	KpiHt         float64 `json:"KPI_HT"`
}

// CreateOrderRequest carries the full waybill registration payload.
type CreateOrderRequest struct {
	OrderNumber      string  `json:"ORDER_NUMBER,omitempty"`
	GroupAddressID   int64   `json:"GROUPADDRESS_ID"`
	CusID            int64   `json:"CUS_ID"`
	DeliveryDate     string  `json:"DELIVERY_DATE"`
	SenderFullname   string  `json:"SENDER_FULLNAME"`
	SenderAddress    string  `json:"SENDER_ADDRESS"`
	SenderPhone      string  `json:"SENDER_PHONE"`
	SenderProvince   int     `json:"SENDER_PROVINCE"`
	SenderDistrict   int     `json:"SENDER_DISTRICT"`
	SenderWards      int     `json:"SENDER_WARDS"`
	ReceiverFullname string  `json:"RECEIVER_FULLNAME"`
	ReceiverAddress  string  `json:"RECEIVER_ADDRESS"`
	ReceiverPhone    string  `json:"RECEIVER_PHONE"`
	ReceiverProvince int     `json:"RECEIVER_PROVINCE"`
	ReceiverDistrict int     `json:"RECEIVER_DISTRICT"`
	ReceiverWards    int     `json:"RECEIVER_WARDS"`
	ProductName      string  `json:"PRODUCT_NAME"`
	ProductDesc      string  `json:"PRODUCT_DESCRIPTION"`
	ProductQuantity  int     `json:"PRODUCT_QUANTITY"`
	ProductPrice     float64 `json:"PRODUCT_PRICE"`
	ProductWeight    float64 `json:"PRODUCT_WEIGHT"`
	ProductType      string  `json:"PRODUCT_TYPE"`
	OrderPayment     int     `json:"ORDER_PAYMENT"`
	OrderService     string  `json:"ORDER_SERVICE"`
	OrderServiceAdd  string  `json:"ORDER_SERVICE_ADD"`
	OrderNote        string  `json:"ORDER_NOTE"`
	MoneyCollection  float64 `json:"MONEY_COLLECTION"`
	MoneyTotalFee    float64 `json:"MONEY_TOTALFEE"`
	MoneyFeeCOD      float64 `json:"MONEY_FEECOD"`
	MoneyFeeVAS      float64 `json:"MONEY_FEEVAS"`
	MoneyFeeInsur    float64 `json:"MONEY_FEEINSURRANCE"`
	MoneyFee         float64 `json:"MONEY_FEE"`
	MoneyFeeOther    float64 `json:"MONEY_FEEOTHER"`
	MoneyTotalVAT    float64 `json:"MONEY_TOTALVAT"`
	MoneyTotal       float64 `json:"MONEY_TOTAL"`
}

// CreateOrderResult is the carrier's acknowledgement of a new waybill.
type CreateOrderResult struct {
	OrderNumber        string  `json:"ORDER_NUMBER"`
	MoneyCollection    float64 `json:"MONEY_COLLECTION"`
	ExchangeWeight     float64 `json:"EXCHANGE_WEIGHT"`
	MoneyTotal         float64 `json:"MONEY_TOTAL"`
	MoneyTotalFee      float64 `json:"MONEY_TOTAL_FEE"`
	MoneyFee           float64 `json:"MONEY_FEE"`
	MoneyCollectionFee float64 `json:"MONEY_COLLECTION_FEE"`
	MoneyVAT           float64 `json:"MONEY_VAT"`
	KpiHt              float64 `json:"KPI_HT"`
}

// Waybill status actions accepted by the carrier's status-update endpoint.
const (
	OrderActionConfirm      = 1 // approve the order
	OrderActionReturn       = 2 // ask for the shipment to be returned
	OrderActionDeliverAgain = 3
	OrderActionCancel       = 4 // cancel the order
	OrderActionReGet        = 5
	OrderActionDelete       = 11
)

// ValidOrderAction reports whether the carrier accepts the action code.
func ValidOrderAction(action int) bool {
	switch action {
	case OrderActionConfirm, OrderActionReturn, OrderActionDeliverAgain,
		OrderActionCancel, OrderActionReGet, OrderActionDelete:
		return true
	}
	return false
}

// CarrierAuth performs the partner API login handshake.
// It deals in raw credentials only and never touches stored tokens.
type CarrierAuth interface {
	// Authenticate logs in and exchanges the short-lived token for a
	// long-lived one where the partner account supports it. The returned
	// expiry is normalized to seconds precision.
	Authenticate(ctx context.Context, username, password string) (*LoginResult, error)
}

// CarrierGateway exposes the authenticated partner API operations.
// Implementations obtain tokens through a TokenProvider and retry once with
// a forced refresh when the carrier rejects the token.
type CarrierGateway interface {
	// ListInventory fetches the account's sender locations.
	ListInventory(ctx context.Context, account *entity.CarrierAccount) ([]InventoryItem, error)

	// GetPrice quotes a shipment.
	GetPrice(ctx context.Context, account *entity.CarrierAccount, req *PriceRequest) (*PriceResult, error)

	// CreateOrder registers a waybill.
	CreateOrder(ctx context.Context, account *entity.CarrierAccount, req *CreateOrderRequest) (*CreateOrderResult, error)

	// EditOrder updates the details of an existing waybill.
	EditOrder(ctx context.Context, account *entity.CarrierAccount, req *CreateOrderRequest) error

	// UpdateOrderStatus applies one of the OrderAction constants to a waybill.
	UpdateOrderStatus(ctx context.Context, account *entity.CarrierAccount, orderNumber string, action int, note string) error

	// GetPrintCode fetches the one-time code used to open the label print page.
	GetPrintCode(ctx context.Context, account *entity.CarrierAccount, orderNumber string) (string, error)

	// PrintURL builds the label print page URL for a code obtained from
	// GetPrintCode. Unknown paper sizes fall back to the carrier default.
	PrintURL(code string, paperSize int) string
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"vtpgate/internal/domain/entity"
	"vtpgate/internal/domain/service"
)

// CreateShipmentInput carries everything needed to register an order with
// the carrier and track it locally.
type CreateShipmentInput struct {
	AccountID     uuid.UUID  `json:"accountId" validate:"required"`
	StoreID       uuid.UUID  `json:"storeId" validate:"required"`
	FulfillmentID *uuid.UUID `json:"fulfillmentId"`

	Reference        string  `json:"reference"`
	ReceiverName     string  `json:"receiverName" validate:"required"`
	ReceiverPhone    string  `json:"receiverPhone" validate:"required"`
	ReceiverAddress  string  `json:"receiverAddress" validate:"required"`
	ReceiverProvince int     `json:"receiverProvince"`
	ReceiverDistrict int     `json:"receiverDistrict"`
	ReceiverWards    int     `json:"receiverWards"`
	ProductName      string  `json:"productName" validate:"required"`
	ProductQuantity  int     `json:"productQuantity"`
	ProductPrice     float64 `json:"productPrice"`
	ProductWeight    float64 `json:"productWeight" validate:"required"`
	MoneyCollection  float64 `json:"moneyCollection"`
	OrderService     string  `json:"orderService" validate:"required"`
	OrderServiceAdd  string  `json:"orderServiceAdd"`
	OrderNote        string  `json:"orderNote"`
}

// ShipmentUsecase drives the order lifecycle against the carrier.
type ShipmentUsecase interface {
	QuotePrice(ctx context.Context, accountID uuid.UUID, req *service.PriceRequest) (*service.PriceResult, error)
	CreateShipment(ctx context.Context, input *CreateShipmentInput) (*entity.Shipment, error)
	// EditShipment pushes corrected waybill details to the carrier. Only
	// orders that have not reached a final state can be edited.
	EditShipment(ctx context.Context, orderNumber string, input *CreateShipmentInput) error
	// ApplyOrderAction forwards one of the service.OrderAction codes to the
	// carrier, for example confirm or deliver-again.
	ApplyOrderAction(ctx context.Context, orderNumber string, action int, note string) error
	CancelShipment(ctx context.Context, orderNumber string, note string) error
	GetShipment(ctx context.Context, orderNumber string) (*entity.Shipment, error)
	ListShipments(ctx context.Context, limit, offset int) ([]*entity.Shipment, error)
	ListHistory(ctx context.Context, orderNumber string) ([]*entity.StatusHistory, error)
	// PrintLabel fetches a short-lived print code from the carrier and
	// returns the label URL for the requested paper size.
	PrintLabel(ctx context.Context, orderNumber string, paperSize int) (string, error)
}

package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "vtpgate/internal/delivery/context"
	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/domain/status"
	"vtpgate/internal/usecase"
)

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	txManager repository.TransactionManager
	gateway   service.CarrierGateway
	logger    *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(
	txManager repository.TransactionManager,
	gateway service.CarrierGateway,
	logger *slog.Logger,
) usecase.ShipmentUsecase {
	return &shipmentService{
		txManager: txManager,
		gateway:   gateway,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// QuotePrice asks the carrier for a quote on behalf of the account.
func (srv *shipmentService) QuotePrice(ctx context.Context, accountID uuid.UUID, req *service.PriceRequest) (*service.PriceResult, error) {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return srv.gateway.GetPrice(ctx, account, req)
}

// CreateShipment registers a waybill with the carrier and tracks it locally.
// The shipment starts without a status; the first webhook event sets it.
func (srv *shipmentService) CreateShipment(ctx context.Context, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	var (
		account *entity.CarrierAccount
		store   *entity.CarrierStore
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), input.AccountID)
		if err != nil {
			return err
		}
		store, err = repoFactory.NewStoreRepository().FindByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, input.StoreID.String())
			}
			return errors.Wrap(err, "load store for shipment")
		}
		if store.AccountID != input.AccountID {
			return errors.Wrap(domainerrors.ErrStoreNotFound, "store belongs to another account")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := srv.gateway.CreateOrder(ctx, account, buildOrderRequest(input, store))
	if err != nil {
		return nil, err
	}

	shipment := &entity.Shipment{
		ID:                 uuid.New(),
		OrderNumber:        result.OrderNumber,
		AccountID:          &account.ID,
		StoreID:            &store.ID,
		FulfillmentID:      input.FulfillmentID,
		ReceiverName:       input.ReceiverName,
		MoneyCollection:    result.MoneyCollection,
		MoneyTotal:         result.MoneyTotal,
		MoneyTotalFee:      result.MoneyTotalFee,
		MoneyFee:           result.MoneyFee,
		MoneyCollectionFee: result.MoneyCollectionFee,
		MoneyVAT:           result.MoneyVAT,
		ExchangeWeight:     result.ExchangeWeight,
		KpiHt:              result.KpiHt,
		TokenTail:          tokenTail(account.Token),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewShipmentRepository().Create(ctx, shipment); err != nil {
			return errors.Wrap(err, "persist shipment")
		}
		if input.FulfillmentID == nil {
			return nil
		}
		fulfillmentRepo := repoFactory.NewFulfillmentRepository()
		doc, err := fulfillmentRepo.FindByID(ctx, *input.FulfillmentID)
		if err != nil {
			if errors.Is(err, repository.ErrFulfillmentNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "fulfillment document not found")
			}
			return errors.Wrap(err, "load fulfillment for shipment")
		}
		doc.OrderNumber = result.OrderNumber
		doc.Stage = entity.StageWaitingWebhook
		return errors.Wrap(fulfillmentRepo.Update(ctx, doc), "link fulfillment to waybill")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Shipment created",
		slog.String("orderNumber", shipment.OrderNumber),
		slog.String("store", store.Name))

	return shipment, nil
}

// EditShipment pushes corrected waybill details to the carrier. The local
// record keeps its fee figures until the next status event refreshes them.
func (srv *shipmentService) EditShipment(ctx context.Context, orderNumber string, input *usecase.CreateShipmentInput) error {
	var (
		account *entity.CarrierAccount
		store   *entity.CarrierStore
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := findShipment(ctx, repoFactory.NewShipmentRepository(), orderNumber)
		if err != nil {
			return err
		}
		if shipment.IsFinal(status.Final) {
			return errors.Wrap(domainerrors.ErrShipmentNotEditable, orderNumber)
		}
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), input.AccountID)
		if err != nil {
			return err
		}
		store, err = repoFactory.NewStoreRepository().FindByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, input.StoreID.String())
			}
			return errors.Wrap(err, "load store for shipment edit")
		}
		if store.AccountID != input.AccountID {
			return errors.Wrap(domainerrors.ErrStoreNotFound, "store belongs to another account")
		}
		return nil
	})
	if err != nil {
		return err
	}

	req := buildOrderRequest(input, store)
	req.OrderNumber = orderNumber
	if err := srv.gateway.EditOrder(ctx, account, req); err != nil {
		return err
	}

	srv.log(ctx).Info("Shipment edited", slog.String("orderNumber", orderNumber))

	return nil
}

// ApplyOrderAction forwards a status action code to the carrier. The local
// status is not touched; the outcome arrives later as a status event.
func (srv *shipmentService) ApplyOrderAction(ctx context.Context, orderNumber string, action int, note string) error {
	if !service.ValidOrderAction(action) {
		return errors.Wrapf(domainerrors.ErrUnknownOrderAction, "action %d", action)
	}

	var account *entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := findShipment(ctx, repoFactory.NewShipmentRepository(), orderNumber)
		if err != nil {
			return err
		}
		if action == service.OrderActionCancel && shipment.IsFinal(status.Final) {
			return errors.Wrap(domainerrors.ErrShipmentNotCancellable, orderNumber)
		}
		if shipment.AccountID == nil {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "shipment has no owning account")
		}
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), *shipment.AccountID)
		return err
	})
	if err != nil {
		return err
	}

	return srv.gateway.UpdateOrderStatus(ctx, account, orderNumber, action, note)
}

// CancelShipment asks the carrier to cancel the waybill.
func (srv *shipmentService) CancelShipment(ctx context.Context, orderNumber string, note string) error {
	return srv.ApplyOrderAction(ctx, orderNumber, service.OrderActionCancel, note)
}

// GetShipment retrieves one shipment by its waybill number.
func (srv *shipmentService) GetShipment(ctx context.Context, orderNumber string) (*entity.Shipment, error) {
	var shipment *entity.Shipment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shipment, err = findShipment(ctx, repoFactory.NewShipmentRepository(), orderNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// ListShipments retrieves shipments, newest first.
func (srv *shipmentService) ListShipments(ctx context.Context, limit, offset int) ([]*entity.Shipment, error) {
	var shipments []*entity.Shipment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shipments, err = repoFactory.NewShipmentRepository().List(ctx, limit, offset)
		return errors.Wrap(err, "list shipments")
	})
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

// ListHistory retrieves a shipment's recorded status events, oldest first.
func (srv *shipmentService) ListHistory(ctx context.Context, orderNumber string) ([]*entity.StatusHistory, error) {
	var history []*entity.StatusHistory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipmentRepo := repoFactory.NewShipmentRepository()
		shipment, err := findShipment(ctx, shipmentRepo, orderNumber)
		if err != nil {
			return err
		}
		history, err = shipmentRepo.ListHistory(ctx, shipment.ID)
		return errors.Wrap(err, "list status history")
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// PrintLabel fetches a print code and returns the label page URL.
func (srv *shipmentService) PrintLabel(ctx context.Context, orderNumber string, paperSize int) (string, error) {
	var account *entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := findShipment(ctx, repoFactory.NewShipmentRepository(), orderNumber)
		if err != nil {
			return err
		}
		if shipment.AccountID == nil {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "shipment has no owning account")
		}
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), *shipment.AccountID)
		return err
	})
	if err != nil {
		return "", err
	}

	code, err := srv.gateway.GetPrintCode(ctx, account, orderNumber)
	if err != nil {
		return "", err
	}
	return srv.gateway.PrintURL(code, paperSize), nil
}

// loadAccount fetches one account outside of any mutation flow.
func (srv *shipmentService) loadAccount(ctx context.Context, accountID uuid.UUID) (*entity.CarrierAccount, error) {
	var account *entity.CarrierAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = findAccount(ctx, repoFactory.NewAccountRepository(), accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// findAccount translates repository misses into domain errors.
func findAccount(ctx context.Context, repo repository.AccountRepository, id uuid.UUID) (*entity.CarrierAccount, error) {
	account, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, id.String())
		}
		return nil, errors.Wrap(err, "load account")
	}
	return account, nil
}

// findShipment translates repository misses into domain errors.
func findShipment(ctx context.Context, repo repository.ShipmentRepository, orderNumber string) (*entity.Shipment, error) {
	shipment, err := repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShipmentNotFound, orderNumber)
		}
		return nil, errors.Wrap(err, "load shipment")
	}
	return shipment, nil
}

// buildOrderRequest maps the input and the sender store onto the carrier's
// waybill payload.
func buildOrderRequest(input *usecase.CreateShipmentInput, store *entity.CarrierStore) *service.CreateOrderRequest {
	return &service.CreateOrderRequest{
		OrderNumber:      input.Reference,
		GroupAddressID:   store.GroupAddressID,
		CusID:            store.CustomerID,
		SenderFullname:   store.Name,
		SenderAddress:    store.Address,
		SenderPhone:      store.Phone,
		SenderProvince:   store.ProvinceID,
		SenderDistrict:   store.DistrictID,
		SenderWards:      store.WardsID,
		ReceiverFullname: input.ReceiverName,
		ReceiverAddress:  input.ReceiverAddress,
		ReceiverPhone:    input.ReceiverPhone,
		ReceiverProvince: input.ReceiverProvince,
		ReceiverDistrict: input.ReceiverDistrict,
		ReceiverWards:    input.ReceiverWards,
		ProductName:      input.ProductName,
		ProductQuantity:  input.ProductQuantity,
		ProductPrice:     input.ProductPrice,
		ProductWeight:    input.ProductWeight,
		OrderService:     input.OrderService,
		OrderServiceAdd:  input.OrderServiceAdd,
		OrderNote:        input.OrderNote,
		MoneyCollection:  input.MoneyCollection,
	}
}

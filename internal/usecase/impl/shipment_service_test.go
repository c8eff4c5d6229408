package impl

import (
	"context"
	"testing"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	mockRepo "vtpgate/internal/mocks/repository"
	mockService "vtpgate/internal/mocks/service"
	"vtpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipmentService_CreateShipment_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	storeID := uuid.New()
	fulfillmentID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID, Username: "partner@example.com", Active: true}
	store := &entity.CarrierStore{
		ID:             storeID,
		AccountID:      accountID,
		GroupAddressID: 4455,
		CustomerID:     991,
		Name:           "Main warehouse",
		Address:        "1 Pham Van Dong",
		ProvinceID:     1,
		DistrictID:     4,
		WardsID:        170,
	}
	doc := &entity.FulfillmentDocument{ID: fulfillmentID, Reference: "WH/OUT/0042", Stage: entity.StageDraft}

	input := &usecase.CreateShipmentInput{
		AccountID:     accountID,
		StoreID:       storeID,
		FulfillmentID: &fulfillmentID,
		ReceiverName:  "Nguyen Van A",
		ReceiverPhone: "0901234567",

		ReceiverAddress: "22 Lang Ha, Ha Noi",
		ProductName:     "Shoes",
		ProductWeight:   500,
		OrderService:    "VCN",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)

			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			storeRepo.EXPECT().FindByID(ctx, storeID).Return(store, nil)

			return fn(mockFactory)
		}).Once()

	gateway.EXPECT().
		CreateOrder(ctx, account, mock.MatchedBy(func(req *service.CreateOrderRequest) bool {
			return req.GroupAddressID == 4455 && req.CusID == 991 &&
				req.SenderFullname == "Main warehouse" && req.ReceiverFullname == "Nguyen Van A"
		})).
		Return(&service.CreateOrderResult{
			OrderNumber: "VTP123",
			MoneyTotal:  35000,
			MoneyFee:    30000,
		}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewFulfillmentRepository().Return(fulfillmentRepo)

			shipmentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Shipment) bool {
				return s.OrderNumber == "VTP123" && s.Status == nil &&
					s.AccountID != nil && *s.AccountID == accountID
			})).Return(nil)
			fulfillmentRepo.EXPECT().FindByID(ctx, fulfillmentID).Return(doc, nil)
			fulfillmentRepo.EXPECT().Update(ctx, mock.MatchedBy(func(d *entity.FulfillmentDocument) bool {
				return d.OrderNumber == "VTP123" && d.Stage == entity.StageWaitingWebhook
			})).Return(nil)

			return fn(mockFactory)
		}).Once()

	shipment, err := svc.CreateShipment(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "VTP123", shipment.OrderNumber)
	assert.InDelta(t, 35000, shipment.MoneyTotal, 0.001)
	assert.Nil(t, shipment.Status)
}

func TestShipmentService_CreateShipment_StoreAccountMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	storeID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)

			accountRepo.EXPECT().FindByID(ctx, accountID).
				Return(&entity.CarrierAccount{ID: accountID}, nil)
			storeRepo.EXPECT().FindByID(ctx, storeID).
				Return(&entity.CarrierStore{ID: storeID, AccountID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := svc.CreateShipment(ctx, &usecase.CreateShipmentInput{
		AccountID:       accountID,
		StoreID:         storeID,
		ReceiverName:    "A",
		ReceiverPhone:   "0",
		ReceiverAddress: "B",
		ProductName:     "C",
		ProductWeight:   1,
		OrderService:    "VCN",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestShipmentService_EditShipment_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	storeID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID, Active: true}
	store := &entity.CarrierStore{ID: storeID, AccountID: accountID, GroupAddressID: 4455, Name: "Main warehouse"}
	shipment := &entity.Shipment{ID: uuid.New(), OrderNumber: "VTP123", AccountID: &accountID, Status: intPtr(100)}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP123").Return(shipment, nil)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			storeRepo.EXPECT().FindByID(ctx, storeID).Return(store, nil)

			return fn(mockFactory)
		})

	gateway.EXPECT().
		EditOrder(ctx, account, mock.MatchedBy(func(req *service.CreateOrderRequest) bool {
			return req.OrderNumber == "VTP123" && req.GroupAddressID == 4455 &&
				req.ReceiverFullname == "Nguyen Van B"
		})).
		Return(nil)

	err := svc.EditShipment(ctx, "VTP123", &usecase.CreateShipmentInput{
		AccountID:       accountID,
		StoreID:         storeID,
		ReceiverName:    "Nguyen Van B",
		ReceiverPhone:   "0909876543",
		ReceiverAddress: "5 Tran Phu, Da Nang",
		ProductName:     "Shoes",
		ProductWeight:   500,
		OrderService:    "VCN",
	})

	require.NoError(t, err)
}

func TestShipmentService_EditShipment_FinalState(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	shipment := &entity.Shipment{ID: uuid.New(), OrderNumber: "VTP501", AccountID: &accountID, Status: intPtr(501)}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP501").Return(shipment, nil)

			return fn(mockFactory)
		})

	err := svc.EditShipment(ctx, "VTP501", &usecase.CreateShipmentInput{
		AccountID: accountID,
		StoreID:   uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotEditable)
	gateway.AssertNotCalled(t, "EditOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestShipmentService_ApplyOrderAction_UnknownAction(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	err := svc.ApplyOrderAction(context.Background(), "VTP123", 99, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownOrderAction)
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestShipmentService_ApplyOrderAction_Confirm(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID}
	shipment := &entity.Shipment{ID: uuid.New(), OrderNumber: "VTP123", AccountID: &accountID, Status: intPtr(100)}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP123").Return(shipment, nil)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	gateway.EXPECT().
		UpdateOrderStatus(ctx, account, "VTP123", service.OrderActionConfirm, "").
		Return(nil)

	err := svc.ApplyOrderAction(ctx, "VTP123", service.OrderActionConfirm, "")

	require.NoError(t, err)
}

func TestShipmentService_CancelShipment_FinalState(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	shipment := &entity.Shipment{ID: uuid.New(), OrderNumber: "VTP501", Status: intPtr(501)}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP501").Return(shipment, nil)

			return fn(mockFactory)
		})

	err := svc.CancelShipment(ctx, "VTP501", "late")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotCancellable)
}

func TestShipmentService_CancelShipment_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID}
	shipment := &entity.Shipment{
		ID:          uuid.New(),
		OrderNumber: "VTP123",
		AccountID:   &accountID,
		Status:      intPtr(103),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP123").Return(shipment, nil)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	gateway.EXPECT().
		UpdateOrderStatus(ctx, account, "VTP123", service.OrderActionCancel, "customer asked").
		Return(nil)

	err := svc.CancelShipment(ctx, "VTP123", "customer asked")

	require.NoError(t, err)
}

func TestShipmentService_PrintLabel_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID}
	shipment := &entity.Shipment{ID: uuid.New(), OrderNumber: "VTP123", AccountID: &accountID}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP123").Return(shipment, nil)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	gateway.EXPECT().GetPrintCode(ctx, account, "VTP123").Return("abc123", nil)
	gateway.EXPECT().PrintURL("abc123", 1).
		Return("https://partnerdev.viettelpost.vn/printing?type=1&bill=abc123&showPostage=1")

	url, err := svc.PrintLabel(ctx, "VTP123", 1)

	require.NoError(t, err)
	assert.Contains(t, url, "bill=abc123")
}

func TestShipmentService_QuotePrice_PassesAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockCarrierGateway(t)
	svc := NewShipmentService(txManager, gateway, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.CarrierAccount{ID: accountID}
	req := &service.PriceRequest{SenderProvince: 1, ReceiverProvince: 2, ProductWeight: 500}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)
			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	gateway.EXPECT().GetPrice(ctx, account, req).
		Return(&service.PriceResult{MoneyTotal: 42000}, nil)

	result, err := svc.QuotePrice(ctx, accountID, req)

	require.NoError(t, err)
	assert.InDelta(t, 42000, result.MoneyTotal, 0.001)
}

package impl

import (
	"context"
	"testing"

	"vtpgate/config"
	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	mockRepo "vtpgate/internal/mocks/repository"
	mockService "vtpgate/internal/mocks/service"
	"vtpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEngineConfig(enforceToken bool) *config.Config {
	return &config.Config{
		Webhook: &config.WebhookConfig{EnforceToken: enforceToken},
	}
}

func intPtr(v int) *int { return &v }

func TestStatusEngine_ProcessEvent_MissingOrderNumber(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	_, err := engine.ProcessEvent(context.Background(), &entity.StatusEvent{Status: 200})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingOrderNumber)
	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestStatusEngine_ProcessEvent_UnknownOrder(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewFulfillmentRepository().Return(fulfillmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP404").Return(nil, repository.ErrShipmentNotFound)
			fulfillmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP404").Return(nil, repository.ErrFulfillmentNotFound)

			return fn(mockFactory)
		})

	_, err := engine.ProcessEvent(ctx, &entity.StatusEvent{OrderNumber: "VTP404", Status: 200})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownOrder)
	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestStatusEngine_ProcessEvent_FinalStateIgnored(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()
	shipmentID := uuid.New()
	shipment := &entity.Shipment{ID: shipmentID, OrderNumber: "VTP501", Status: intPtr(501)}

	audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *entity.AuditEntry) bool {
		return e.Success && e.ResponseBody == string(entity.OutcomeIgnored)
	})).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP501").Return(shipment, nil)
			shipmentRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(h *entity.StatusHistory) bool {
				return h.ShipmentID == shipmentID && h.Outcome == entity.OutcomeIgnored && h.Status == 200
			})).Return(nil)

			return fn(mockFactory)
		})

	result, err := engine.ProcessEvent(ctx, &entity.StatusEvent{OrderNumber: "VTP501", Status: 200})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeIgnored, result.Outcome)
	assert.Equal(t, intPtr(501), shipment.Status)
}

func TestStatusEngine_ProcessEvent_InvalidTransitionRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()
	shipmentID := uuid.New()
	shipment := &entity.Shipment{ID: shipmentID, OrderNumber: "VTP100", Status: intPtr(500)}

	audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *entity.AuditEntry) bool {
		return !e.Success && e.ErrorMessage == "invalid status transition" &&
			e.OrderNumber == "VTP100"
	})).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP100").Return(shipment, nil)
			shipmentRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(h *entity.StatusHistory) bool {
				return h.Outcome == entity.OutcomeRejected && h.Status == 999
			})).Return(nil)

			return fn(mockFactory)
		})

	result, err := engine.ProcessEvent(ctx, &entity.StatusEvent{OrderNumber: "VTP100", Status: 999})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeRejected, result.Outcome)
	assert.Equal(t, intPtr(500), shipment.Status)
}

func TestStatusEngine_ProcessEvent_AppliesTransition(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()
	shipmentID := uuid.New()
	accountID := uuid.New()
	storeID := uuid.New()
	fulfillmentID := uuid.New()
	shipment := &entity.Shipment{
		ID:            shipmentID,
		OrderNumber:   "VTP123",
		StoreID:       &storeID,
		FulfillmentID: &fulfillmentID,
		Status:        intPtr(103),
	}

	audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			storeRepo := mockRepo.NewMockStoreRepository(t)
			fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewStoreRepository().Return(storeRepo)
			mockFactory.EXPECT().NewFulfillmentRepository().Return(fulfillmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP123").Return(shipment, nil)
			storeRepo.EXPECT().FindByID(ctx, storeID).
				Return(&entity.CarrierStore{ID: storeID, AccountID: accountID}, nil)
			shipmentRepo.EXPECT().Update(ctx, shipment).Return(nil)
			fulfillmentRepo.EXPECT().UpdateStage(ctx, fulfillmentID, entity.StageCreated).Return(nil)
			shipmentRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(h *entity.StatusHistory) bool {
				return h.Outcome == entity.OutcomeApplied && h.Status == 200 &&
					h.Location == "Hanoi hub" && !h.IsReturning
			})).Return(nil)

			return fn(mockFactory)
		})

	event := &entity.StatusEvent{
		OrderNumber:     "VTP123",
		Status:          200,
		StatusName:      "Received from sender",
		Location:        "Hanoi hub",
		ReceiverName:    "Nguyen Van A",
		MoneyCollection: 150000,
	}
	result, err := engine.ProcessEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeApplied, result.Outcome)
	assert.Equal(t, intPtr(200), shipment.Status)
	assert.Equal(t, &accountID, shipment.AccountID)
	assert.Equal(t, "Nguyen Van A", shipment.ReceiverName)
	assert.InDelta(t, 150000, shipment.MoneyCollection, 0.001)
}

func TestStatusEngine_ProcessEvent_MaterializesFromFulfillment(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()
	doc := &entity.FulfillmentDocument{
		ID:          uuid.New(),
		OrderNumber: "VTP777",
		Stage:       entity.StageWaitingWebhook,
	}

	audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewFulfillmentRepository().Return(fulfillmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP777").Return(nil, repository.ErrShipmentNotFound)
			fulfillmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP777").Return(doc, nil)
			shipmentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Shipment) bool {
				return s.OrderNumber == "VTP777" && s.FulfillmentID != nil && *s.FulfillmentID == doc.ID &&
					s.Status != nil && *s.Status == 200
			})).Return(nil)
			fulfillmentRepo.EXPECT().UpdateStage(ctx, doc.ID, entity.StageCreated).Return(nil)
			shipmentRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(h *entity.StatusHistory) bool {
				return h.Outcome == entity.OutcomeApplied
			})).Return(nil)

			return fn(mockFactory)
		})

	result, err := engine.ProcessEvent(ctx, &entity.StatusEvent{OrderNumber: "VTP777", Status: 200})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, entity.OutcomeApplied, result.Outcome)
}

func TestStatusEngine_ProcessEvent_MaterializesByReference(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()
	doc := &entity.FulfillmentDocument{
		ID:        uuid.New(),
		Reference: "WH001",
		Stage:     entity.StageDraft,
	}

	audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewFulfillmentRepository().Return(fulfillmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP123").Return(nil, repository.ErrShipmentNotFound)
			fulfillmentRepo.EXPECT().FindByReference(ctx, "WH001").Return(doc, nil)
			fulfillmentRepo.EXPECT().Update(ctx, mock.MatchedBy(func(d *entity.FulfillmentDocument) bool {
				return d.ID == doc.ID && d.OrderNumber == "VTP123"
			})).Return(nil)
			shipmentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Shipment) bool {
				return s.OrderNumber == "VTP123" && s.FulfillmentID != nil && *s.FulfillmentID == doc.ID &&
					s.Status != nil && *s.Status == 102
			})).Return(nil)
			fulfillmentRepo.EXPECT().UpdateStage(ctx, doc.ID, entity.StageWaitingWebhook).Return(nil)
			shipmentRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(h *entity.StatusHistory) bool {
				return h.Outcome == entity.OutcomeApplied
			})).Return(nil)

			return fn(mockFactory)
		})

	result, err := engine.ProcessEvent(ctx, &entity.StatusEvent{
		OrderNumber: "VTP123",
		Reference:   "WH001",
		Status:      102,
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, entity.OutcomeApplied, result.Outcome)
	assert.Equal(t, "VTP123", doc.OrderNumber)
}

func TestStatusEngine_ProcessEvent_WebhookTokenMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(true), newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()
	shipment := &entity.Shipment{
		ID:          uuid.New(),
		OrderNumber: "VTP900",
		AccountID:   &accountID,
		Status:      intPtr(103),
	}

	audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(accountRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP900").Return(shipment, nil)
			accountRepo.EXPECT().FindByID(ctx, accountID).
				Return(&entity.CarrierAccount{ID: accountID, WebhookToken: "expected"}, nil)

			return fn(mockFactory)
		})

	_, err := engine.ProcessEvent(ctx, &entity.StatusEvent{OrderNumber: "VTP900", Status: 200, Token: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookTokenMismatch)
}

func TestStatusEngine_ProcessBatch_CountsFailures(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	audit := mockService.NewMockAuditTrail(t)
	engine := NewStatusEngine(txManager, audit, newEngineConfig(false), newDiscardLogger())

	ctx := context.Background()
	shipment := &entity.Shipment{ID: uuid.New(), OrderNumber: "VTP1", Status: intPtr(103)}

	audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			shipmentRepo := mockRepo.NewMockShipmentRepository(t)

			mockFactory.EXPECT().NewShipmentRepository().Return(shipmentRepo)

			shipmentRepo.EXPECT().FindByOrderNumber(ctx, "VTP1").Return(shipment, nil)
			shipmentRepo.EXPECT().AppendHistory(ctx, mock.Anything).Return(nil)

			return fn(mockFactory)
		}).Once()

	events := []entity.StatusEvent{
		{OrderNumber: "VTP1", Status: 999},
		{Status: 200},
	}
	result, err := engine.ProcessBatch(ctx, events)

	require.NoError(t, err)
	assert.Equal(t, &usecase.BatchResult{Processed: 1, Failed: 1}, result)
}

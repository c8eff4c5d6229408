package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vtpgate/config"
	deliverycontext "vtpgate/internal/delivery/context"
	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/domain/status"
	"vtpgate/internal/usecase"
)

// statusEngine implements the StatusUsecase interface. Every event runs in
// its own transaction so one bad item never poisons the rest of a batch.
type statusEngine struct {
	txManager repository.TransactionManager
	audit     service.AuditTrail
	cfg       *config.Config
	logger    *slog.Logger
}

// NewStatusEngine is the constructor for statusEngine.
func NewStatusEngine(
	txManager repository.TransactionManager,
	audit service.AuditTrail,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StatusUsecase {
	return &statusEngine{
		txManager: txManager,
		audit:     audit,
		cfg:       cfg,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the engine's logger.
func (srv *statusEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessBatch applies the events one by one. Items that fail are counted
// and logged but do not stop the batch.
func (srv *statusEngine) ProcessBatch(ctx context.Context, events []entity.StatusEvent) (*usecase.BatchResult, error) {
	result := &usecase.BatchResult{}
	for i := range events {
		if _, err := srv.ProcessEvent(ctx, &events[i]); err != nil {
			srv.log(ctx).Warn("Status event failed",
				slog.String("orderNumber", events[i].OrderNumber),
				slog.Int("status", events[i].Status),
				slog.Any("error", err))
			result.Failed++
			continue
		}
		result.Processed++
	}
	return result, nil
}

// ProcessEvent applies a single carrier status event. The order number is
// mandatory; events for orders this system has never seen are refused
// without leaving any record behind.
func (srv *statusEngine) ProcessEvent(ctx context.Context, event *entity.StatusEvent) (*usecase.EventResult, error) {
	if event.OrderNumber == "" {
		err := errors.WithStack(domainerrors.ErrMissingOrderNumber)
		srv.recordDecision(ctx, nil, event, "", err)
		return nil, err
	}

	result := &usecase.EventResult{OrderNumber: event.OrderNumber}
	var accountID *uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipmentRepo := repoFactory.NewShipmentRepository()

		shipment, err := shipmentRepo.FindByOrderNumber(ctx, event.OrderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return srv.materialize(ctx, repoFactory, event, result)
			}
			return errors.Wrap(err, "load shipment for event")
		}
		accountID = shipment.AccountID

		if err := srv.checkWebhookToken(ctx, repoFactory, shipment, event); err != nil {
			return err
		}

		if shipment.IsFinal(status.Final) {
			result.Outcome = entity.OutcomeIgnored
			return srv.appendHistory(ctx, shipmentRepo, shipment.ID, event, entity.OutcomeIgnored)
		}

		if !status.CanTransition(shipment.Status, event.Status) {
			result.Outcome = entity.OutcomeRejected
			return srv.appendHistory(ctx, shipmentRepo, shipment.ID, event, entity.OutcomeRejected)
		}

		if err := srv.apply(ctx, repoFactory, shipment, event); err != nil {
			return err
		}
		accountID = shipment.AccountID
		result.Outcome = entity.OutcomeApplied
		return srv.appendHistory(ctx, shipmentRepo, shipment.ID, event, entity.OutcomeApplied)
	})

	srv.recordDecision(ctx, accountID, event, result.Outcome, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// materialize creates the shipment record for an event whose waybill is
// known only through a fulfillment document. The first observed status is
// taken as-is; transition rules start applying from the next event.
func (srv *statusEngine) materialize(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	event *entity.StatusEvent,
	result *usecase.EventResult,
) error {
	fulfillmentRepo := repoFactory.NewFulfillmentRepository()
	doc, err := srv.resolveFulfillment(ctx, fulfillmentRepo, event)
	if err != nil {
		if errors.Is(err, repository.ErrFulfillmentNotFound) {
			return errors.Wrap(domainerrors.ErrUnknownOrder, event.OrderNumber)
		}
		return errors.Wrap(err, "load fulfillment for event")
	}
	if err := srv.stampWaybill(ctx, fulfillmentRepo, doc, event.OrderNumber); err != nil {
		return err
	}

	code := event.Status
	shipment := &entity.Shipment{
		ID:                 uuid.New(),
		OrderNumber:        event.OrderNumber,
		FulfillmentID:      &doc.ID,
		Status:             &code,
		StatusName:         event.StatusName,
		ReceiverName:       event.ReceiverName,
		MoneyCollection:    event.MoneyCollection,
		MoneyFee:           event.MoneyFee,
		MoneyCollectionFee: event.MoneyFeeCOD,
		MoneyVAT:           event.MoneyVAT,
		MoneyTotal:         event.MoneyTotal,
		ExchangeWeight:     event.ProductWeight,
		ExpectedDelivery:   event.ExpectedDelivery,
	}

	shipmentRepo := repoFactory.NewShipmentRepository()
	if err := shipmentRepo.Create(ctx, shipment); err != nil {
		return errors.Wrap(err, "create shipment from event")
	}
	if stage, ok := status.Stage(code); ok && stage != doc.Stage {
		if err := fulfillmentRepo.UpdateStage(ctx, doc.ID, stage); err != nil {
			return errors.Wrap(err, "move fulfillment stage")
		}
	}

	result.Created = true
	result.Outcome = entity.OutcomeApplied
	return srv.appendHistory(ctx, shipmentRepo, shipment.ID, event, entity.OutcomeApplied)
}

// resolveFulfillment finds the document an event belongs to. The partner
// reference is authoritative; documents created before the carrier assigned
// a waybill are only known by it. The waybill number covers documents that
// already carry one.
func (srv *statusEngine) resolveFulfillment(
	ctx context.Context,
	fulfillmentRepo repository.FulfillmentRepository,
	event *entity.StatusEvent,
) (*entity.FulfillmentDocument, error) {
	if event.Reference != "" {
		doc, err := fulfillmentRepo.FindByReference(ctx, event.Reference)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, repository.ErrFulfillmentNotFound) {
			return nil, errors.Wrap(err, "load fulfillment by reference")
		}
	}
	return fulfillmentRepo.FindByOrderNumber(ctx, event.OrderNumber)
}

// stampWaybill records the carrier waybill number on a document that was
// resolved by reference and does not carry it yet.
func (srv *statusEngine) stampWaybill(
	ctx context.Context,
	fulfillmentRepo repository.FulfillmentRepository,
	doc *entity.FulfillmentDocument,
	orderNumber string,
) error {
	if doc.OrderNumber == orderNumber {
		return nil
	}
	doc.OrderNumber = orderNumber
	return errors.Wrap(fulfillmentRepo.Update(ctx, doc), "assign waybill to fulfillment")
}

// checkWebhookToken verifies the TOKEN carried by the event against the
// owning account, when enforcement is enabled and the account declares one.
func (srv *statusEngine) checkWebhookToken(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	shipment *entity.Shipment,
	event *entity.StatusEvent,
) error {
	if srv.cfg.Webhook == nil || !srv.cfg.Webhook.EnforceToken || shipment.AccountID == nil {
		return nil
	}
	account, err := repoFactory.NewAccountRepository().FindByID(ctx, *shipment.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}
		return errors.Wrap(err, "load account for webhook token check")
	}
	if account.WebhookToken != "" && event.Token != account.WebhookToken {
		return errors.Wrap(domainerrors.ErrWebhookTokenMismatch, event.OrderNumber)
	}
	return nil
}

// apply moves the shipment to the event's status and refreshes the fields
// the event carries. Zero-valued money fields are left alone so partial
// events do not wipe amounts recorded earlier.
func (srv *statusEngine) apply(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	shipment *entity.Shipment,
	event *entity.StatusEvent,
) error {
	code := event.Status
	shipment.Status = &code
	shipment.StatusName = event.StatusName
	if event.ReceiverName != "" {
		shipment.ReceiverName = event.ReceiverName
	}
	if event.MoneyCollection != 0 {
		shipment.MoneyCollection = event.MoneyCollection
	}
	if event.MoneyFee != 0 {
		shipment.MoneyFee = event.MoneyFee
	}
	if event.MoneyFeeCOD != 0 {
		shipment.MoneyCollectionFee = event.MoneyFeeCOD
	}
	if event.MoneyVAT != 0 {
		shipment.MoneyVAT = event.MoneyVAT
	}
	if event.MoneyTotal != 0 {
		shipment.MoneyTotal = event.MoneyTotal
	}
	if event.ProductWeight != 0 {
		shipment.ExchangeWeight = event.ProductWeight
	}
	if event.ExpectedDelivery != nil {
		shipment.ExpectedDelivery = event.ExpectedDelivery
	}

	if shipment.AccountID == nil && shipment.StoreID != nil {
		store, err := repoFactory.NewStoreRepository().FindByID(ctx, *shipment.StoreID)
		if err == nil {
			shipment.AccountID = &store.AccountID
		} else if !errors.Is(err, repository.ErrStoreNotFound) {
			return errors.Wrap(err, "resolve account from store")
		}
	}

	fulfillmentRepo := repoFactory.NewFulfillmentRepository()
	if shipment.FulfillmentID == nil {
		doc, err := srv.resolveFulfillment(ctx, fulfillmentRepo, event)
		if err == nil {
			shipment.FulfillmentID = &doc.ID
			if err := srv.stampWaybill(ctx, fulfillmentRepo, doc, event.OrderNumber); err != nil {
				return err
			}
		} else if !errors.Is(err, repository.ErrFulfillmentNotFound) {
			return errors.Wrap(err, "link fulfillment to shipment")
		}
	}

	if err := repoFactory.NewShipmentRepository().Update(ctx, shipment); err != nil {
		return errors.Wrap(err, "persist shipment status")
	}

	if shipment.FulfillmentID != nil {
		if stage, ok := status.Stage(code); ok {
			if err := fulfillmentRepo.UpdateStage(ctx, *shipment.FulfillmentID, stage); err != nil {
				return errors.Wrap(err, "move fulfillment stage")
			}
		}
	}
	return nil
}

// appendHistory records the event against the shipment with the decided
// outcome. History is written for every event that reached a known shipment.
func (srv *statusEngine) appendHistory(
	ctx context.Context,
	shipmentRepo repository.ShipmentRepository,
	shipmentID uuid.UUID,
	event *entity.StatusEvent,
	outcome entity.HistoryOutcome,
) error {
	history := &entity.StatusHistory{
		ID:          uuid.New(),
		ShipmentID:  shipmentID,
		Status:      event.Status,
		StatusName:  event.StatusName,
		Note:        event.Note,
		Location:    event.Location,
		IsReturning: event.IsReturning,
		Outcome:     outcome,
		EventTime:   event.EventTime,
	}
	return errors.Wrap(shipmentRepo.AppendHistory(ctx, history), "append status history")
}

// recordDecision writes one audit entry per processed event. Refusals that
// never resolved an account (missing or unknown order number) leave no
// entry; there is no owner to file it under. The serialized event doubles
// as the request body.
func (srv *statusEngine) recordDecision(
	ctx context.Context,
	accountID *uuid.UUID,
	event *entity.StatusEvent,
	outcome entity.HistoryOutcome,
	procErr error,
) {
	if accountID == nil && procErr != nil {
		return
	}

	body, _ := json.Marshal(event)
	entry := &entity.AuditEntry{
		ID:          uuid.New(),
		AccountID:   accountID,
		OrderNumber: event.OrderNumber,
		Endpoint:    "webhook/order-status",
		Method:      "POST",
		RequestBody: string(body),
		Success:     procErr == nil && outcome != entity.OutcomeRejected,
		CreatedAt:   time.Now(),
	}
	switch {
	case procErr != nil:
		entry.ErrorMessage = procErr.Error()
	case outcome == entity.OutcomeRejected:
		entry.ResponseBody = string(outcome)
		entry.ErrorMessage = "invalid status transition"
	default:
		entry.ResponseBody = string(outcome)
	}
	srv.audit.Record(ctx, entry)
}

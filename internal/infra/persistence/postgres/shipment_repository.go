package postgres

import (
	"context"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shipmentRepository implements the domain.ShipmentRepository interface using GORM.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// FindByID retrieves a single shipment by its unique ID.
func (repo *shipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by id")
	}

	return toShipmentDomain(&shipmentM), nil
}

// FindByOrderNumber retrieves the shipment holding the carrier waybill number.
func (repo *shipmentRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel
	if err := repo.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by order number")
	}

	return toShipmentDomain(&shipmentM), nil
}

// List retrieves shipments ordered by creation time, newest first.
func (repo *shipmentRepository) List(ctx context.Context, limit, offset int) ([]*entity.Shipment, error) {
	var shipmentMs []*model.ShipmentModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&shipmentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentMs))
	for _, shipmentM := range shipmentMs {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments, nil
}

// Create persists a new shipment entity to the database.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt
	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

// Update modifies an existing shipment entity in the database.
func (repo *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Save(shipmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shipment")
	}

	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

// AppendHistory records one status event against a shipment.
func (repo *shipmentRepository) AppendHistory(ctx context.Context, history *entity.StatusHistory) error {
	historyM := &model.StatusHistoryModel{
		ID:          history.ID,
		ShipmentID:  history.ShipmentID,
		Status:      history.Status,
		StatusName:  history.StatusName,
		Note:        history.Note,
		Location:    history.Location,
		IsReturning: history.IsReturning,
		Outcome:     string(history.Outcome),
		EventTime:   history.EventTime,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShipmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append status history")
	}

	history.ID = historyM.ID
	history.CreatedAt = historyM.CreatedAt

	return nil
}

// ListHistory retrieves a shipment's recorded events, oldest first.
func (repo *shipmentRepository) ListHistory(ctx context.Context, shipmentID uuid.UUID) ([]*entity.StatusHistory, error) {
	var historyMs []*model.StatusHistoryModel
	err := repo.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("created_at").
		Find(&historyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list status history")
	}

	history := make([]*entity.StatusHistory, 0, len(historyMs))
	for _, historyM := range historyMs {
		history = append(history, &entity.StatusHistory{
			ID:          historyM.ID,
			ShipmentID:  historyM.ShipmentID,
			Status:      historyM.Status,
			StatusName:  historyM.StatusName,
			Note:        historyM.Note,
			Location:    historyM.Location,
			IsReturning: historyM.IsReturning,
			Outcome:     entity.HistoryOutcome(historyM.Outcome),
			EventTime:   historyM.EventTime,
			CreatedAt:   historyM.CreatedAt,
		})
	}

	return history, nil
}

// --- Mapper Functions ---

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	return &entity.Shipment{
		ID:                 data.ID,
		OrderNumber:        data.OrderNumber,
		AccountID:          data.AccountID,
		StoreID:            data.StoreID,
		FulfillmentID:      data.FulfillmentID,
		Status:             data.Status,
		StatusName:         data.StatusName,
		ReceiverName:       data.ReceiverName,
		MoneyCollection:    data.MoneyCollection,
		MoneyTotal:         data.MoneyTotal,
		MoneyTotalFee:      data.MoneyTotalFee,
		MoneyFee:           data.MoneyFee,
		MoneyCollectionFee: data.MoneyCollectionFee,
		MoneyVAT:           data.MoneyVAT,
		ExchangeWeight:     data.ExchangeWeight,
		KpiHt:              data.KpiHt,
		ExpectedDelivery:   data.ExpectedDelivery,
		TokenTail:          data.TokenTail,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	return &model.ShipmentModel{
		ID:                 data.ID,
		OrderNumber:        data.OrderNumber,
		AccountID:          data.AccountID,
		StoreID:            data.StoreID,
		FulfillmentID:      data.FulfillmentID,
		Status:             data.Status,
		StatusName:         data.StatusName,
		ReceiverName:       data.ReceiverName,
		MoneyCollection:    data.MoneyCollection,
		MoneyTotal:         data.MoneyTotal,
		MoneyTotalFee:      data.MoneyTotalFee,
		MoneyFee:           data.MoneyFee,
		MoneyCollectionFee: data.MoneyCollectionFee,
		MoneyVAT:           data.MoneyVAT,
		ExchangeWeight:     data.ExchangeWeight,
		KpiHt:              data.KpiHt,
		ExpectedDelivery:   data.ExpectedDelivery,
		TokenTail:          data.TokenTail,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

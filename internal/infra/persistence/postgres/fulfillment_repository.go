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

// fulfillmentRepository implements the domain.FulfillmentRepository interface using GORM.
type fulfillmentRepository struct {
	db *gorm.DB
}

// NewFulfillmentRepository is the constructor for fulfillmentRepository.
func NewFulfillmentRepository(db *gorm.DB) repository.FulfillmentRepository {
	return &fulfillmentRepository{db: db}
}

// FindByID retrieves a single document by its unique ID.
func (repo *fulfillmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FulfillmentDocument, error) {
	var docM model.FulfillmentDocumentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFulfillmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find fulfillment by id")
	}

	return toFulfillmentDomain(&docM), nil
}

// FindByOrderNumber retrieves the document assigned the carrier waybill number.
func (repo *fulfillmentRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.FulfillmentDocument, error) {
	var docM model.FulfillmentDocumentModel
	if err := repo.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFulfillmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find fulfillment by order number")
	}

	return toFulfillmentDomain(&docM), nil
}

// FindByReference retrieves a document by its internal reference.
func (repo *fulfillmentRepository) FindByReference(ctx context.Context, reference string) (*entity.FulfillmentDocument, error) {
	var docM model.FulfillmentDocumentModel
	if err := repo.db.WithContext(ctx).Where("reference = ?", reference).First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFulfillmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find fulfillment by reference")
	}

	return toFulfillmentDomain(&docM), nil
}

// Create persists a new document entity to the database.
func (repo *fulfillmentRepository) Create(ctx context.Context, doc *entity.FulfillmentDocument) error {
	docM := fromFulfillmentDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create fulfillment")
	}

	doc.ID = docM.ID
	doc.CreatedAt = docM.CreatedAt
	doc.UpdatedAt = docM.UpdatedAt

	return nil
}

// Update modifies an existing document entity in the database.
func (repo *fulfillmentRepository) Update(ctx context.Context, doc *entity.FulfillmentDocument) error {
	docM := fromFulfillmentDomain(doc)

	if err := repo.db.WithContext(ctx).Save(docM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update fulfillment")
	}

	doc.UpdatedAt = docM.UpdatedAt

	return nil
}

// UpdateStage moves the document into a lifecycle bucket.
func (repo *fulfillmentRepository) UpdateStage(ctx context.Context, id uuid.UUID, stage entity.FulfillmentStage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FulfillmentDocumentModel{}).
		Where("id = ?", id).
		Update("stage", string(stage))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fulfillment stage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFulfillmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFulfillmentDomain(data *model.FulfillmentDocumentModel) *entity.FulfillmentDocument {
	return &entity.FulfillmentDocument{
		ID:          data.ID,
		Reference:   data.Reference,
		OrderNumber: data.OrderNumber,
		Stage:       entity.FulfillmentStage(data.Stage),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromFulfillmentDomain(data *entity.FulfillmentDocument) *model.FulfillmentDocumentModel {
	return &model.FulfillmentDocumentModel{
		ID:          data.ID,
		Reference:   data.Reference,
		OrderNumber: data.OrderNumber,
		Stage:       string(data.Stage),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"time"

	"vtpgate/internal/domain/entity"
	domainerrors "vtpgate/internal/domain/errors"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditRepository implements the domain.AuditRepository interface using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Create persists one audit entry.
func (repo *auditRepository) Create(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := &model.APIAuditModel{
		ID:           entry.ID,
		AccountID:    entry.AccountID,
		OrderNumber:  entry.OrderNumber,
		Endpoint:     entry.Endpoint,
		Method:       entry.Method,
		RequestBody:  entry.RequestBody,
		ResponseBody: entry.ResponseBody,
		StatusCode:   entry.StatusCode,
		Success:      entry.Success,
		ErrorMessage: entry.ErrorMessage,
		TokenTail:    entry.TokenTail,
		DurationMS:   entry.DurationMS,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// IncrementAccountCalls bumps the API call counter of an account. Entries for
// unknown accounts are tolerated, the counter update is best effort.
func (repo *auditRepository) IncrementAccountCalls(ctx context.Context, accountID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CarrierAccountModel{}).
		Where("id = ?", accountID).
		Update("api_call_count", gorm.Expr("api_call_count + 1")).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment api call counter")
	}

	return nil
}

// ListByAccount retrieves an account's entries, newest first.
func (repo *auditRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AuditEntry, error) {
	var entryMs []*model.APIAuditModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	return toAuditDomainList(entryMs), nil
}

// ListByOrderNumber retrieves the entries recorded against a waybill,
// newest first.
func (repo *auditRepository) ListByOrderNumber(ctx context.Context, orderNumber string, limit, offset int) ([]*entity.AuditEntry, error) {
	var entryMs []*model.APIAuditModel
	err := repo.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries by order number")
	}

	return toAuditDomainList(entryMs), nil
}

// ListFailures retrieves failed entries across all accounts, newest first.
func (repo *auditRepository) ListFailures(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error) {
	var entryMs []*model.APIAuditModel
	err := repo.db.WithContext(ctx).
		Where("success = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list failed audit entries")
	}

	return toAuditDomainList(entryMs), nil
}

func toAuditDomainList(entryMs []*model.APIAuditModel) []*entity.AuditEntry {
	entries := make([]*entity.AuditEntry, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, &entity.AuditEntry{
			ID:           entryM.ID,
			AccountID:    entryM.AccountID,
			OrderNumber:  entryM.OrderNumber,
			Endpoint:     entryM.Endpoint,
			Method:       entryM.Method,
			RequestBody:  entryM.RequestBody,
			ResponseBody: entryM.ResponseBody,
			StatusCode:   entryM.StatusCode,
			Success:      entryM.Success,
			ErrorMessage: entryM.ErrorMessage,
			TokenTail:    entryM.TokenTail,
			DurationMS:   entryM.DurationMS,
			CreatedAt:    entryM.CreatedAt,
		})
	}

	return entries
}

// DeleteOlderThan removes entries created before the cutoff.
func (repo *auditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.APIAuditModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete audit entries")
	}

	return result.RowsAffected, nil
}

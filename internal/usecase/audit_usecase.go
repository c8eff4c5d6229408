package usecase

import (
	"context"

	"github.com/google/uuid"

	"vtpgate/internal/domain/entity"
)

// AuditUsecase exposes the carrier API audit trail.
type AuditUsecase interface {
	ListAccountAudit(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AuditEntry, error)
	ListShipmentAudit(ctx context.Context, orderNumber string, limit, offset int) ([]*entity.AuditEntry, error)
	ListFailedCalls(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error)
	// PurgeExpired drops audit entries older than the configured retention
	// window and returns how many rows were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

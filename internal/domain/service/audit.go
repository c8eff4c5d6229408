package service

import (
	"context"

	"vtpgate/internal/domain/entity"
)

// AuditTrail records API calls and status decisions for later inspection.
// Record must never fail the operation being audited; implementations log
// write failures and move on.
type AuditTrail interface {
	Record(ctx context.Context, entry *entity.AuditEntry)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vtpgate/config"
	deliverycontext "vtpgate/internal/delivery/context"
	"vtpgate/internal/domain/entity"
	"vtpgate/internal/domain/repository"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/usecase"
)

// AuditService is both the AuditTrail sink the carrier client writes to and
// the AuditUsecase operators read from. Writes bypass the transaction
// manager so an audit entry survives the rollback of the call it describes.
type AuditService struct {
	entries repository.AuditRepository
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuditService is the constructor for AuditService.
func NewAuditService(
	entries repository.AuditRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *AuditService {
	return &AuditService{
		entries: entries,
		cfg:     cfg,
		logger:  logger,
	}
}

// NewAuditTrail exposes the service through the domain sink interface.
func NewAuditTrail(srv *AuditService) service.AuditTrail {
	return srv
}

// NewAuditUsecase exposes the service through the usecase interface.
func NewAuditUsecase(srv *AuditService) usecase.AuditUsecase {
	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *AuditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record persists one audit entry. Failures are logged and swallowed so
// auditing never breaks the operation being audited.
func (srv *AuditService) Record(ctx context.Context, entry *entity.AuditEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := srv.entries.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to write audit entry",
			slog.String("endpoint", entry.Endpoint), slog.Any("error", err))
		return
	}

	if entry.AccountID != nil {
		if err := srv.entries.IncrementAccountCalls(ctx, *entry.AccountID); err != nil {
			srv.log(ctx).Error("Failed to bump API call counter",
				slog.Any("account_id", *entry.AccountID), slog.Any("error", err))
		}
	}
}

// ListAccountAudit retrieves an account's audit entries, newest first.
func (srv *AuditService) ListAccountAudit(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AuditEntry, error) {
	entries, err := srv.entries.ListByAccount(ctx, accountID, limit, offset)
	return entries, errors.Wrap(err, "list audit entries")
}

// ListShipmentAudit retrieves the audit entries recorded against a waybill,
// newest first.
func (srv *AuditService) ListShipmentAudit(ctx context.Context, orderNumber string, limit, offset int) ([]*entity.AuditEntry, error) {
	entries, err := srv.entries.ListByOrderNumber(ctx, orderNumber, limit, offset)
	return entries, errors.Wrap(err, "list shipment audit entries")
}

// ListFailedCalls retrieves failed audit entries across all accounts,
// newest first.
func (srv *AuditService) ListFailedCalls(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error) {
	entries, err := srv.entries.ListFailures(ctx, limit, offset)
	return entries, errors.Wrap(err, "list failed audit entries")
}

// PurgeExpired drops entries older than the configured retention window.
func (srv *AuditService) PurgeExpired(ctx context.Context) (int64, error) {
	retention := time.Duration(srv.cfg.Audit.RetentionDays) * 24 * time.Hour
	cutoff := time.Now().Add(-retention)

	deleted, err := srv.entries.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "purge audit entries")
	}
	if deleted > 0 {
		srv.log(ctx).Info("Audit trail purged",
			slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))
	}
	return deleted, nil
}

var (
	_ service.AuditTrail   = (*AuditService)(nil)
	_ usecase.AuditUsecase = (*AuditService)(nil)
)

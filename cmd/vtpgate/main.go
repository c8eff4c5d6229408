package main

import (
	"context"
	"log/slog"
	"os"

	"vtpgate/config"
	"vtpgate/internal/delivery"
	"vtpgate/internal/delivery/http"
	"vtpgate/internal/delivery/http/middleware"
	"vtpgate/internal/delivery/http/router/handler"
	"vtpgate/internal/domain/service"
	"vtpgate/internal/infra/auth"
	"vtpgate/internal/infra/carrier"
	"vtpgate/internal/infra/crypto"
	logs "vtpgate/internal/infra/log"
	"vtpgate/internal/infra/persistence/postgres"
	"vtpgate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVaultSettingsRepository,
			postgres.NewAccountRepository,
			postgres.NewAuditRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			crypto.NewVault,
			postgres.NewAdvisoryLock,
			carrier.NewClient,
			newCarrierAuth,
			carrier.NewGateway,
			newCarrierGateway,
		),
	)
}

// newCarrierAuth exposes the carrier client through the login interface.
func newCarrierAuth(client *carrier.Client) service.CarrierAuth {
	return client
}

// newCarrierGateway exposes the carrier gateway through the domain interface.
func newCarrierGateway(gateway *carrier.Gateway) service.CarrierGateway {
	return gateway
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewAuditTrail,
			impl.NewAuditUsecase,
			impl.NewTokenManager,
			impl.NewTokenProvider,
			impl.NewStatusEngine,
			impl.NewAccountService,
			impl.NewStoreService,
			impl.NewShipmentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewAccountHandler,
			handler.NewStoreHandler,
			handler.NewShipmentHandler,
			handler.NewAuditHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

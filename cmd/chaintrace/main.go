package main

import (
	"context"
	"log/slog"
	"os"

	"chaintrace/config"
	"chaintrace/internal/delivery"
	"chaintrace/internal/delivery/http"
	"chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/http/router/handler"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/infra/auth"
	"chaintrace/internal/infra/chain"
	"chaintrace/internal/infra/geocode"
	logs "chaintrace/internal/infra/log"
	"chaintrace/internal/infra/metrics"
	"chaintrace/internal/infra/persistence/postgres"
	"chaintrace/internal/infra/pubsub"
	"chaintrace/internal/infra/qrcode"
	"chaintrace/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		metrics.New,
		func(m *metrics.Metrics) service.MetricsRecorder { return m },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewRawMaterialRepository,
			postgres.NewPurchaseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			chain.NewTransactionVerifier,
			geocode.NewGeocoder,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewRawMaterialService,
			impl.NewPurchaseService,
			impl.NewTrackingService,
			impl.NewRecommendationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewRawMaterialHandler,
			handler.NewPurchaseHandler,
			handler.NewTrackingHandler,
			handler.NewRecommendationHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

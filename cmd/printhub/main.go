package main

import (
	"context"
	"log/slog"
	"os"

	"printhub/config"
	"printhub/internal/delivery"
	"printhub/internal/delivery/api"
	"printhub/internal/delivery/api/middleware"
	"printhub/internal/delivery/api/router/handler"
	"printhub/internal/domain/entity"
	"printhub/internal/infra/auth"
	logs "printhub/internal/infra/log"
	"printhub/internal/infra/persistence/postgres"
	"printhub/internal/infra/pubsub"
	"printhub/internal/infra/qrcode"
	"printhub/internal/infra/storage"
	"printhub/internal/usecase"
	"printhub/internal/usecase/impl"

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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			auditSessions,
			drainBackfills,
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
			postgres.NewAuthUserRepository,
			postgres.NewProfileRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewShopRepository,
			postgres.NewPricingRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionEvents,
			impl.NewSessionService,
			impl.NewRoleResolver,
			impl.NewRouteGuard,
			impl.NewOrderService,
			impl.NewShopService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewPageHandler,
			handler.NewOrderHandler,
			handler.NewShopHandler,
			handler.NewAdminHandler,
			handler.NewDocumentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// auditSessions logs every session change for the lifetime of the process.
func auditSessions(lc fx.Lifecycle, session usecase.SessionUsecase, logger *slog.Logger) {
	var unsubscribe func()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			unsubscribe = session.OnSessionChange(func(change entity.SessionChange) {
				logger.Info("Session changed",
					slog.String("event", string(change.Event)),
					slog.String("user_id", change.UserID.String()),
				)
			})

			return nil
		},
		OnStop: func(context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return nil
		},
	})
}

// drainBackfills waits for in-flight role back-fills before the database closes.
func drainBackfills(lc fx.Lifecycle, resolver usecase.RoleResolver) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				resolver.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

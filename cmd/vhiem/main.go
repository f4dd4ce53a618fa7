package main

import (
	"context"
	"log/slog"
	"os"

	"vhiem/config"
	"vhiem/internal/delivery"
	"vhiem/internal/delivery/http"
	"vhiem/internal/delivery/http/middleware"
	"vhiem/internal/delivery/http/router/handler"
	"vhiem/internal/infra/auth"
	logs "vhiem/internal/infra/log"
	"vhiem/internal/infra/media"
	"vhiem/internal/infra/persistence/postgres"
	"vhiem/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewLikeRepository,
			postgres.NewFollowRepository,
			postgres.NewPointTransactionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			media.NewBlobStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewContentService,
			impl.NewSocialService,
			impl.NewReactionService,
			impl.NewDirectoryService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewPostHandler,
			handler.NewSocialHandler,
			handler.NewDirectoryHandler,
			handler.NewMediaHandler,
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

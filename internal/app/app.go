package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/velkovsky/blog-portal/config"
	"github.com/velkovsky/blog-portal/internal/blogportal"
	"github.com/velkovsky/blog-portal/internal/db"
	"github.com/velkovsky/blog-portal/internal/rest"
	"github.com/velkovsky/blog-portal/internal/revalidate"
	"github.com/velkovsky/blog-portal/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, redisClient *redis.Client, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	signal := revalidate.NewRedisSignal(redisClient)
	manager := blogportal.NewBlogManager(database, signal, logger)

	handler := rest.NewBlogHandler(manager, signal, cfg.Revalidate.Secret, logger)
	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, manager)
	e.Any("/v1/rpc", echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

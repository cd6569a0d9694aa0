package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/AniTigerSib/BookTrackerBackend/config"
	"github.com/AniTigerSib/BookTrackerBackend/db"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/cache"
	authhandler "github.com/AniTigerSib/BookTrackerBackend/internal/auth/handler"
	authrepo "github.com/AniTigerSib/BookTrackerBackend/internal/auth/repository/postgres"
	authservice "github.com/AniTigerSib/BookTrackerBackend/internal/auth/service"
	bookhandler "github.com/AniTigerSib/BookTrackerBackend/internal/book/handler"
	bookrepo "github.com/AniTigerSib/BookTrackerBackend/internal/book/repository/postgres"
	bookservice "github.com/AniTigerSib/BookTrackerBackend/internal/book/service"
	"github.com/AniTigerSib/BookTrackerBackend/internal/middleware"
)

func main() {
	cfg := config.MustLoad()
	log := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	sessions, err := cache.NewRedisCache(ctx, cfg.RedisURL, "")
	if err != nil {
		log.Error("redis connection failed", "err", err)
		os.Exit(1)
	}
	defer sessions.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	bookRepo := bookrepo.NewPostgresRepository(dbPool)
	tokenService := authservice.NewTokenService(
		cfg.Auth.AccessTokenSecret, cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL,
	)
	userService := authservice.NewUserService(userRepo, tokenService, sessions, cfg)
	bookService := bookservice.NewBookService(bookRepo)

	authHandler := authhandler.NewAuthHandler(userService)
	bookHandler := bookhandler.NewBookHandler(bookService)
	guard := middleware.RequireAuth(tokenService, userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Timeouts.Request,
		WriteTimeout: cfg.Timeouts.Request,
		ErrorHandler: errorHandler(log),
	})
	app.Use(middleware.RequestLogger(log))

	authhandler.RegisterRoutes(app, authHandler, guard)
	bookhandler.RegisterRoutes(app, bookHandler, guard)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(cfg.Timeouts.Shutdown)
	}()

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// errorHandler is the last stop for errors no handler translated: it
// logs the details and answers with a generic body so internals never
// leak to the caller.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("unexpected error",
				"request_id", c.Locals("request_id"),
				"path", c.Path(),
				"err", err,
			)
			return c.Status(code).JSON(fiber.Map{"error": "internal server error"})
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

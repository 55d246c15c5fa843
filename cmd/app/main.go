package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	server := httpin.NewServer(app.Handlers(), logger)
	e, err := httpin.NewEcho(ctx, server, logger)
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}
	e.Logger.SetLevel(echoLogLevel(config.LogLevel))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.String("port", config.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return shutdown(shutdownCtx, e, logger)
	})

	return g.Wait()
}

func shutdown(ctx context.Context, e *echo.Echo, logger *slog.Logger) error {
	logger.Info("shutting down")
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}

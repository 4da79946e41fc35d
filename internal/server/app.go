// Package server initializes and runs the backend application: database
// pool, migrations, services, HTTP server, and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Sandhya175/GrowlioBackend/internal/logging"
	"github.com/Sandhya175/GrowlioBackend/internal/mailx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/config"
	"github.com/Sandhya175/GrowlioBackend/internal/server/httpapi"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/repomanager"
	"github.com/Sandhya175/GrowlioBackend/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var sender mailx.Sender
	if cfg.SMTPAddr != "" {
		sender = mailx.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		sender = mailx.NewRecordingSender()
	}

	accountService := services.NewAccountService(db, rm, cfg)
	resetService := services.NewPasswordResetService(db, rm, sender, cfg)
	profileService := services.NewProfileService(db, rm)
	dashboardService := services.NewDashboardService(db, rm)

	handlers := httpapi.NewHandlers(accountService, resetService, profileService, dashboardService, logger)
	router := httpapi.NewRouter(handlers, cfg)
	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, router)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or the listener fails, then
// drains in-flight requests and closes the pool.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down")
	if err := app.server.Shutdown(context.Background()); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}

// Package server assembles the API server: logging, the PostgreSQL pool,
// schema migrations, the trigger dispatcher, services and the HTTP layer.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/scholarshipops/scholarshipops/internal/logging"
	"github.com/scholarshipops/scholarshipops/internal/server/api"
	"github.com/scholarshipops/scholarshipops/internal/server/config"
	"github.com/scholarshipops/scholarshipops/internal/server/dispatch"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
	"github.com/scholarshipops/scholarshipops/internal/server/services"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	dispatcher dispatch.Dispatcher
	httpServer *api.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	var d dispatch.Dispatcher = dispatch.Noop{}
	if c.RedisAddr != "" {
		rd, err := dispatch.NewRedisDispatcher(ctx, dispatch.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Prefix:   c.RedisQueuePrefix,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("dispatcher init error: %w", err)
		}
		d = rd
	}

	cors := api.DefaultCORSPolicy()
	cors.AllowedOrigins = c.CORSOrigins

	srv := api.NewServer(api.Options{
		Address:         c.HTTPAddr,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
		CORS:            cors,
	}, logger, api.Services{
		Leads:        services.NewLeadService(db, rm),
		Applications: services.NewApplicationService(db, rm),
		Criteria:     services.NewCriteriaService(db, rm),
		Stats:        services.NewStatsService(db, rm),
		Triggers:     services.NewTriggerService(d, logger),
	})

	return &App{config: c, logger: logger, db: db, dispatcher: d, httpServer: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database pool and the dispatcher.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.dispatcher.Close(); err != nil {
		app.logger.Error(ctx, "dispatcher close failed", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}

// Package server wires configuration, storage, the access oracle and the
// gateway service together and runs the HTTP and gRPC servers.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/blob"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/httpapi"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	"github.com/dmitrijs2005/timevault/internal/timex"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/timevault/internal/server/grpc"
)

var sqlOpen = sql.Open

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	gateway    *services.GatewayService
	reconciler *services.Reconciler
	closers    []func() error
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(context.Background(), c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	app := &App{config: c, logger: logger}

	rm, err := app.initRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := app.initBlobs(ctx)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("blob init error: %w", err)
	}

	clock := timex.SystemClock{}
	o, err := newOracle(c, clock, logger)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("oracle init error: %w", err)
	}

	app.gateway = services.NewGatewayService(app.db, rm, blobs, o, c, clock, logger)
	app.reconciler = services.NewReconciler(app.gateway, c.ReconcileSchedule, logger)

	return app, nil
}

func (app *App) initRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	c := app.config

	switch c.Storage {
	case config.StorageMemory, "":
		return repomanager.NewMemoryRepositoryManager(), nil

	case config.StoragePostgres:
		db, err := sqlOpen("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		app.db = db
		app.closers = append(app.closers, db.Close)

		masterKey := cryptox.DeriveMasterKey([]byte(c.MasterSecret), []byte(c.MasterSalt))
		rm := repomanager.NewPostgresRepositoryManager(masterKey)
		if err := rm.RunMigrations(ctx, db); err != nil {
			app.close(ctx)
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return rm, nil

	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}

func (app *App) initBlobs(ctx context.Context) (blob.Repository, error) {
	c := app.config

	switch c.BlobBackend {
	case config.BlobMemory, "":
		return blob.NewMemoryRepository(), nil

	case config.BlobS3:
		return blob.NewS3Repository(ctx, blob.S3Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
			Prefix:       c.S3Prefix,
		})

	case config.BlobGCS:
		r, err := blob.NewGCSRepository(ctx, blob.GCSOptions{
			Bucket:   c.GCSBucket,
			Prefix:   c.GCSPrefix,
			Endpoint: c.GCSEndpoint,
		})
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, r.Close)
		return r, nil

	default:
		return nil, fmt.Errorf("unknown blob backend %q", c.BlobBackend)
	}
}

// newOracle builds the configured backend behind a Guard.
func newOracle(c *config.Config, clock timex.Clock, logger logging.Logger) (oracle.Oracle, error) {
	var backend oracle.Oracle

	switch c.OracleBackend {
	case config.OracleLedger, "":
		backend = oracle.NewLedgerOracle(clock)
	case config.OracleExec:
		backend = oracle.NewExecOracle(oracle.ExecOptions{
			Command:     c.OracleCommand,
			WorkDir:     c.OracleWorkDir,
			AddressFile: c.OracleAddressFile,
		}, logger)
	case config.OracleDrand:
		backend = oracle.NewDrandOracle(c.DrandURL, &http.Client{Timeout: c.OracleTimeout})
	default:
		return nil, fmt.Errorf("unknown oracle backend %q", c.OracleBackend)
	}

	return oracle.NewGuard(backend, oracle.GuardOptions{
		Timeout:         c.OracleTimeout,
		CheckRetries:    uint64(max(c.OracleCheckRetries, 0)),
		RegisterRetries: uint64(max(c.OracleRegisterRetries, 0)),
		Backoff:         c.OracleBackoff,
	}, logger), nil
}

func (app *App) close(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Error(ctx, "close", "error", err)
		}
	}
	app.closers = nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.gateway, app.reconciler,
		app.config.SecretKey, app.config.MaxUploadBytes)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.gateway, app.reconciler,
		app.config.SecretKey, app.config.MaxUploadBytes)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startReconciler(ctx context.Context, cancelFunc context.CancelFunc) {

	if err := app.reconciler.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or a server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.ReconcileSchedule != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startReconciler(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	app.close(shutdownCtx)

	app.logger.Info(shutdownCtx, "App stopped")
}

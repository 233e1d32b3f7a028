package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/failure"
	"github.com/xenking/shop-ledger/internal/handler"
	"github.com/xenking/shop-ledger/internal/repository"
	"github.com/xenking/shop-ledger/internal/storage/memory"
	"github.com/xenking/shop-ledger/internal/txn"
	"github.com/xenking/shop-ledger/pkg/health"
	"github.com/xenking/shop-ledger/pkg/httpmiddleware"
)

const serviceName = "shop-api"

type database interface {
	txn.Beginner
	health.Pinger
}

// backend is a transactional store with its repositories.
type backend struct {
	name        string
	db          database
	isTransient txn.TransientFunc
	wallets     wallet.RepositoryFactory
	products    product.RepositoryFactory
	orders      order.RepositoryFactory
	close       func()
}

func openBackend(ctx context.Context, lg *zap.Logger, cfg *Config) (*backend, error) {
	if cfg.Storage == StorageMemory {
		lg.Warn("Using in-memory storage, data is lost on restart")
		return &backend{
			name:        StorageMemory,
			db:          memory.New(),
			isTransient: memory.IsTransient,
			wallets:     memory.Wallets,
			products:    memory.Products,
			orders:      memory.Orders,
			close:       func() {},
		}, nil
	}

	isolation, err := repository.ParseIsolation(cfg.Txn.Isolation)
	if err != nil {
		return nil, err
	}
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, errors.Wrap(err, "run migrations")
	}
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "create db pool")
	}
	return &backend{
		name:        StoragePostgres,
		db:          repository.NewStore(pool, isolation),
		isTransient: repository.IsTransient,
		wallets:     repository.Wallets,
		products:    repository.Products,
		orders:      repository.Orders,
		close:       pool.Close,
	}, nil
}

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.Storage),
		zap.Int("txn_max_attempts", cfg.Txn.MaxAttempts),
	)

	store, err := openBackend(ctx, lg, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	exec, err := txn.NewExecutor(store.db, txn.Options{
		MaxAttempts:    cfg.Txn.MaxAttempts,
		AttemptTimeout: cfg.Txn.AttemptTimeout,
		IsTransient:    store.isTransient,
		MeterProvider:  m.MeterProvider(),
		TracerProvider: m.TracerProvider(),
	})
	if err != nil {
		return errors.Wrap(err, "create executor")
	}

	reporter, err := failure.NewLogReporter(m.MeterProvider().Meter(serviceName))
	if err != nil {
		return errors.Wrap(err, "create failure reporter")
	}

	// Domain services.
	ledger := wallet.NewLedger(exec, store.wallets)
	catalog := product.NewCatalog(exec, store.products)
	orders := order.NewService(exec, inventory.NewAccessor(store.products), ledger, store.orders)

	// Health check service.
	healthSvc := health.New()
	healthSvc.Register(health.Readiness, health.Check{
		Name:    store.name,
		Timeout: 5 * time.Second,
		Func:    health.PingCheck(store.db),
	})
	healthSvc.Register(health.Liveness, health.Check{
		Name: "goroutines",
		Func: health.GoroutineCountCheck(10000),
	})
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// HTTP handlers.
	h := handler.New(catalog, ledger, orders, reporter)
	securityHandler := handler.NewSecurityHandler([]byte(cfg.JWTSecret))

	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(h.HandleError),
		oas.WithNotFound(handler.NotFound),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	// Mux: health endpoints + ogen API routes on one server.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer.FindPath)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", httpmiddleware.RequestIDHeader},
				ExposeHeaders:    []string{httpmiddleware.RequestIDHeader, "Retry-After"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument(serviceName, routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:     cfg.RateLimit.Max,
				Window:  cfg.RateLimit.Window,
				KeyFunc: securityHandler.RateLimitKey,
			}),
			httpmiddleware.LimitBody(1<<20),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}

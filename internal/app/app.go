package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/mariia-hub/bookingcore/internal/config"
	"github.com/mariia-hub/bookingcore/internal/demand"
	"github.com/mariia-hub/bookingcore/internal/export"
	"github.com/mariia-hub/bookingcore/internal/handler"
	"github.com/mariia-hub/bookingcore/internal/metrics"
	"github.com/mariia-hub/bookingcore/internal/middleware"
	"github.com/mariia-hub/bookingcore/internal/notification"
	"github.com/mariia-hub/bookingcore/internal/pricing"
	"github.com/mariia-hub/bookingcore/internal/repository"
	"github.com/mariia-hub/bookingcore/internal/router"
	"github.com/mariia-hub/bookingcore/internal/scheduler"
	"github.com/mariia-hub/bookingcore/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"bookingcore",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis addr is empty, demand caching disabled")
		return nil
	}

	client := demand.NewRedisClient(demand.RedisConfig{
		Address:  a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		PoolSize: 10,
	})

	if err := demand.Ping(context.Background(), client); err != nil {
		return err
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	metrics.Register()

	serviceRepo := repository.NewServiceRepo(a.db)
	slotRepo := repository.NewSlotRepo(a.db)
	ruleRepo := repository.NewRuleRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	waitlistRepo := repository.NewWaitlistRepo(a.db)
	auditRepo := repository.NewAuditRepo(a.db)

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AdminChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	registry := pricing.NewRegistry()
	resolver := pricing.NewResolver(registry, a.cfg.Pricing.MinPrice, a.cfg.Pricing.Currency, a.log)
	tracker := demand.NewTracker(a.redis, slotRepo, a.cfg.Redis.TTL, a.log)

	catalogService := service.NewCatalogService(serviceRepo, slotRepo)
	pricingService := service.NewPricingService(ruleRepo, serviceRepo, tracker, resolver, a.log)
	waitlistService := service.NewWaitlistService(
		waitlistRepo, slotRepo, serviceRepo, bookingRepo, auditRepo,
		pricingService, notifier, a.log,
	)
	bookingService := service.NewBookingService(
		bookingRepo, slotRepo, serviceRepo, auditRepo,
		pricingService, tracker, waitlistService, notifier, a.log,
	)
	exporter := export.NewExporter(bookingRepo, serviceRepo, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		waitlistService,
		a.cfg.Scheduler.Interval,
		a.cfg.Pricing.DepositTTL,
		a.log,
	)

	rateLimiter := middleware.NewRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst)

	h := handler.NewHandler(catalogService, pricingService, bookingService, waitlistService, exporter)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		rateLimiter.Limit(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

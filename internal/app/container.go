// Package app wires configuration, infrastructure, and application services
// into a single container used by the CLI entrypoints.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/vocalis/internal/analytics"
	catalogapp "github.com/felixgeelhaar/vocalis/internal/catalog/application"
	catalogdomain "github.com/felixgeelhaar/vocalis/internal/catalog/domain"
	"github.com/felixgeelhaar/vocalis/internal/catalog/infrastructure/monetization"
	purchaseapp "github.com/felixgeelhaar/vocalis/internal/purchase/application"
	responseapp "github.com/felixgeelhaar/vocalis/internal/response/application"
	responsedomain "github.com/felixgeelhaar/vocalis/internal/response/domain"
	sessiondomain "github.com/felixgeelhaar/vocalis/internal/session/domain"
	sessionpersistence "github.com/felixgeelhaar/vocalis/internal/session/infrastructure/persistence"
	"github.com/felixgeelhaar/vocalis/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	SQLiteStore *sessionpersistence.SQLiteStore

	// Session attribute store
	AttributeStore sessiondomain.AttributeStore

	// Analytics
	Tracker analytics.Tracker

	// Catalog
	CatalogSource  catalogdomain.Source
	CatalogService *catalogapp.Service

	// Response assembly
	Assembler *responseapp.Assembler

	// Purchase flows
	PurchaseService *purchaseapp.Service
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	if err := c.initAttributeStore(ctx); err != nil {
		return nil, err
	}
	c.initTracker()
	c.initCatalogSource()

	c.Assembler = responseapp.NewAssembler(
		c.AttributeStore,
		c.Tracker,
		responsedomain.SSMLSynthesizer{},
		nil,
		responseapp.AssemblerConfig{LogResponses: cfg.LogResponses},
		logger,
	)

	c.CatalogService = catalogapp.NewService(c.CatalogSource, logger)
	c.PurchaseService = purchaseapp.NewService(c.CatalogService, c.Assembler, logger)

	return c, nil
}

// initAttributeStore connects the configured session backend. In development
// an unreachable backend degrades to the in-memory store instead of failing
// startup.
func (c *Container) initAttributeStore(ctx context.Context) error {
	cfg := c.Config

	switch cfg.SessionBackend {
	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return c.storeFallback(fmt.Errorf("failed to parse Redis URL: %w", err))
		}
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return c.storeFallback(fmt.Errorf("failed to connect to Redis: %w", err))
		}
		c.RedisClient = client
		c.AttributeStore = sessionpersistence.NewRedisStore(client, cfg.SessionTTL)
		c.Logger.Info("connected to Redis", "backend", "redis")

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return c.storeFallback(fmt.Errorf("failed to connect to database: %w", err))
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return c.storeFallback(fmt.Errorf("failed to ping database: %w", err))
		}
		c.DB = pool
		c.AttributeStore = sessionpersistence.NewPostgresStore(pool)
		c.Logger.Info("connected to database", "backend", "postgres")

	case "sqlite":
		store, err := sessionpersistence.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return c.storeFallback(fmt.Errorf("failed to open SQLite store: %w", err))
		}
		c.SQLiteStore = store
		c.AttributeStore = store
		c.Logger.Info("opened SQLite store", "backend", "sqlite", "path", cfg.SQLitePath)

	default:
		c.AttributeStore = sessionpersistence.NewMemoryStore()
		c.Logger.Info("using in-memory attribute store", "backend", "memory")
	}

	return nil
}

// storeFallback degrades to the in-memory store in development and fails
// otherwise.
func (c *Container) storeFallback(err error) error {
	if !c.Config.IsDevelopment() {
		return err
	}
	c.Logger.Warn("session backend not available, using in-memory fallback", "error", err)
	c.AttributeStore = sessionpersistence.NewMemoryStore()
	return nil
}

// initTracker connects the analytics broker, falling back to a noop tracker
// when none is configured or reachable in development.
func (c *Container) initTracker() {
	cfg := c.Config

	if cfg.RabbitMQURL == "" {
		c.Tracker = analytics.NewNoopTracker(c.Logger)
		return
	}

	tracker, err := analytics.NewRabbitMQTracker(cfg.RabbitMQURL, c.Logger)
	if err != nil {
		c.Logger.Warn("RabbitMQ not available, using noop tracker", "error", err)
		c.Tracker = analytics.NewNoopTracker(c.Logger)
		return
	}
	c.Tracker = tracker
}

// initCatalogSource selects the monetization client or, without a configured
// endpoint, a static development catalog.
func (c *Container) initCatalogSource() {
	cfg := c.Config

	if cfg.MonetizationURL != "" {
		clientCfg := monetization.DefaultClientConfig()
		clientCfg.BaseURL = cfg.MonetizationURL
		clientCfg.Timeout = cfg.MonetizationTimeout
		c.CatalogSource = monetization.NewClient(clientCfg, c.Logger)
		return
	}

	c.Logger.Warn("no monetization endpoint configured, serving development catalog")
	c.CatalogSource = monetization.NewStaticSource(developmentCatalog())
}

// developmentCatalog is a small fixed catalog for local runs without a
// monetization backend.
func developmentCatalog() catalogdomain.List {
	return catalogdomain.List{
		{
			ProductID:     "amzn1.adg.product.dev-gold",
			ReferenceName: "gold_pack",
			Name:          "Gold Pack",
			Type:          catalogdomain.TypeConsumable,
			Entitled:      catalogdomain.NotEntitled,
			Purchasable:   catalogdomain.Purchasable,
		},
		{
			ProductID:     "amzn1.adg.product.dev-premium",
			ReferenceName: "premium",
			Name:          "Premium",
			Type:          catalogdomain.TypeSubscription,
			Entitled:      catalogdomain.NotEntitled,
			Purchasable:   catalogdomain.Purchasable,
		},
	}
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.Tracker != nil {
		if err := c.Tracker.Close(); err != nil {
			c.Logger.Warn("error closing analytics tracker", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("error closing Redis connection", "error", err)
		} else {
			c.Logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		c.DB.Close()
		c.Logger.Info("PostgreSQL connection closed")
	}

	if c.SQLiteStore != nil {
		if err := c.SQLiteStore.Close(); err != nil {
			c.Logger.Warn("error closing SQLite store", "error", err)
		} else {
			c.Logger.Info("SQLite store closed")
		}
	}
}

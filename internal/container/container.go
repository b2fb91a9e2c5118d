package container

import (
	"context"

	"github.com/google/uuid"

	"backoffice/internal/config"
	"backoffice/internal/gateway"
	"backoffice/internal/repository"
	"backoffice/internal/service"
	"backoffice/internal/session"
	"backoffice/pkg/database"
	"backoffice/pkg/logger"
	"backoffice/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logger.Logger
	RedisClient  *redis.Client
	DB           *database.PostgresDB
	Gateway      *gateway.Client
	Repositories *repository.Repositories
	Services     *service.Services
	Sessions     session.Store

	// SessionSecret signs session cookies. Generated per process when not configured.
	SessionSecret []byte
}

// New creates a new dependency injection container. Redis and Postgres are
// optional: without them sessions live in memory and the dashboard shows no
// reservation data.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*Container, error) {
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, keeping sessions in memory")
		} else {
			redisClient = client
			logger.Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, keeping sessions in memory")
	}

	var db *database.PostgresDB
	if cfg.DatabaseURL != "" {
		pg, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Warn("Failed to connect to database, proceeding without audit feed and statistics")
		} else {
			db = pg
			logger.Info("Database connection established")
		}
	} else {
		logger.Info("Database URL not configured, proceeding without audit feed and statistics")
	}

	repos := &repository.Repositories{}
	if db != nil {
		repos.Audit = repository.NewAuditEventRepository(db)
		repos.Reservation = repository.NewReservationStatsRepository(db)
	}

	gw := gateway.NewClient(ctx, cfg.API, logger.WithField("component", "gateway"))

	catalog := service.NewCatalogService(gw, repos.Audit, logger.WithField("component", "catalog"))
	dashboard := service.NewDashboardService(catalog, repos.Reservation, repos.Audit, logger.WithField("component", "dashboard"))

	var sessions session.Store
	if redisClient != nil {
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL, logger)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
		secret = []byte(uuid.NewString() + uuid.NewString())
	}

	return &Container{
		Config:       cfg,
		Logger:       logger,
		RedisClient:  redisClient,
		DB:           db,
		Gateway:      gw,
		Repositories: repos,
		Services: &service.Services{
			Catalog:   catalog,
			Dashboard: dashboard,
		},
		Sessions:      sessions,
		SessionSecret: secret,
	}, nil
}

// Close releases the Redis and database connections
func (c *Container) Close() error {
	var firstErr error
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	return firstErr
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetCatalogService returns the catalog service
func (c *Container) GetCatalogService() service.CatalogService {
	return c.Services.Catalog
}

// GetDashboardService returns the dashboard service
func (c *Container) GetDashboardService() service.DashboardService {
	return c.Services.Dashboard
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// HasDatabase returns true if the database is available
func (c *Container) HasDatabase() bool {
	return c.DB != nil
}

package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/regsvc/domain"
	"github.com/you/regsvc/internal/config"
	"github.com/you/regsvc/internal/infrastructure/auth"
	"github.com/you/regsvc/internal/infrastructure/database"
	"github.com/you/regsvc/internal/infrastructure/repositories"
	"github.com/you/regsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	RegistrationRepo domain.RegistrationRepository
	SessionRepo      domain.SessionRepository

	// Services
	RegistrationSvc domain.RegistrationService
	AdminQuerySvc   domain.AdminQueryService
	AdminAuthSvc    domain.AdminAuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.RegistrationRepo = repositories.NewRegistrationRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
}

func (c *Container) initServices() {
	c.RegistrationSvc = services.NewRegistrationService(c.RegistrationRepo, c.Config.DedupWindow)
	c.AdminQuerySvc = services.NewAdminQueryService(c.RegistrationRepo)
	c.AdminAuthSvc = services.NewAdminAuthService(
		c.Config.AdminUsername,
		c.Config.AdminPassword,
		auth.NewCredentialsService(),
		c.SessionRepo,
		c.Config.SessionTTL,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

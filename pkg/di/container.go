package di

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"task-tracker-api/application/serviceimpl"
	"task-tracker-api/domain/repositories"
	"task-tracker-api/domain/services"
	"task-tracker-api/infrastructure/postgres"
	redispkg "task-tracker-api/infrastructure/redis"
	"task-tracker-api/interfaces/api"
	"task-tracker-api/pkg/config"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

const limiterKeyPrefix = "ratelimit:"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional, shared rate limit counters
	LimiterStorage fiber.Storage    // nil when Redis is not configured
	TokenManager   *utils.TokenManager

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	AuthService services.AuthService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database, c.Config.Log.Level)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional: without it each instance counts requests in memory.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (in-memory rate limiting)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.LimiterStorage = redispkg.NewLimiterStorage(redisClient, limiterKeyPrefix)
		}
	}

	c.TokenManager = utils.NewTokenManager(utils.TokenConfig{
		Secret:    c.Config.JWT.Secret,
		ExpiresIn: c.Config.JWT.ExpiresIn,
		Issuer:    c.Config.JWT.Issuer,
		Audience:  c.Config.JWT.Audience,
	})

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.TokenManager, c.Config.Auth.BcryptCost)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository)
	logger.Info("Services initialized")
}

// AppDependencies is everything api.NewApp needs.
func (c *Container) AppDependencies() api.Dependencies {
	return api.Dependencies{
		Config:         c.Config,
		AuthService:    c.AuthService,
		TaskService:    c.TaskService,
		LimiterStorage: c.LimiterStorage,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

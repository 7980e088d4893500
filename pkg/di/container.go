package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gymrank/application/serviceimpl"
	"gymrank/domain/repositories"
	"gymrank/domain/services"
	"gymrank/infrastructure/postgres"
	"gymrank/interfaces/api/handlers"
	"gymrank/pkg/config"
	"gymrank/pkg/logger"
)

// Container owns the application's long-lived state: configuration, the
// pooled database handle, and the repository/service graph. It is built once
// at startup and torn down at shutdown; nothing here mutates afterwards.
type Container struct {
	Config *config.Config

	DB *gorm.DB

	CategoryRepository repositories.CategoryRepository
	RankingRepository  repositories.RankingRepository
	SettingRepository  repositories.SettingRepository

	CategoryService services.CategoryService
	RankingService  services.RankingService
	ImportService   services.ImportService
	SettingService  services.SettingService
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

	if err := c.initDatabase(); err != nil {
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
	logger.Info("Logger initialized", "level", logConfig.Level, "format", logConfig.Format)
	return nil
}

func (c *Container) initDatabase() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.SeedIfEmpty(ctx, db); err != nil {
		return err
	}

	c.DB = db
	logger.Info("Database connected", "db", c.Config.Database.DBName)
	return nil
}

func (c *Container) initRepositories() {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.RankingRepository = postgres.NewRankingRepository(c.DB)
	c.SettingRepository = postgres.NewSettingRepository(c.DB)
}

func (c *Container) initServices() {
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.RankingRepository)
	c.RankingService = serviceimpl.NewRankingService(c.CategoryService, c.RankingRepository)
	c.ImportService = serviceimpl.NewImportService(c.RankingRepository)
	c.SettingService = serviceimpl.NewSettingService(c.SettingRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices bundles the services the HTTP layer composes over.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		Category: c.CategoryService,
		Ranking:  c.RankingService,
		Import:   c.ImportService,
		Setting:  c.SettingService,
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
		logger.Info("Database connection closed")
	}
	return nil
}

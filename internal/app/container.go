package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/OOlexandr/Contacts/domain"
	"github.com/OOlexandr/Contacts/internal/config"
	"github.com/OOlexandr/Contacts/internal/infrastructure/auth"
	"github.com/OOlexandr/Contacts/internal/infrastructure/database"
	"github.com/OOlexandr/Contacts/internal/infrastructure/notifications"
	"github.com/OOlexandr/Contacts/internal/infrastructure/repositories"
	"github.com/OOlexandr/Contacts/internal/infrastructure/storage"
	"github.com/OOlexandr/Contacts/internal/services"
)

// Container holds all dependencies. It exists for integration tests that
// need wired services without starting the HTTP listener.
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo    domain.UserRepository
	ContactRepo domain.ContactRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AvatarStorage   domain.AvatarStorage
	RateLimiter     domain.RateLimiter
	AuthSvc         domain.AuthService
	ContactSvc      domain.ContactService
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

	if err := container.initServices(); err != nil {
		return nil, err
	}

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
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ContactRepo = repositories.NewContactRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
		c.Config.EmailTokenTTL,
	)
	c.NotificationSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	avatarStorage, err := storage.NewS3AvatarStorage(context.Background(), storage.S3Config{
		Region:       c.Config.S3Region,
		BaseEndpoint: c.Config.S3BaseEndpoint,
		Bucket:       c.Config.S3Bucket,
		AccessKey:    c.Config.S3AccessKey,
		SecretKey:    c.Config.S3SecretKey,
		PublicURL:    c.Config.S3PublicURL,
	})
	if err != nil {
		return err
	}
	c.AvatarStorage = avatarStorage

	c.RateLimiter = services.NewRateLimiter(c.RedisClient, services.RateLimitConfig{
		Limit:  c.Config.RateLimit,
		Window: c.Config.RateLimitWindow,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotificationSvc,
		c.RateLimiter,
		c.Config.AccessTTL,
		c.Config.BaseURL,
	)
	c.ContactSvc = services.NewContactService(c.ContactRepo, nil, c.Config.BirthdayWindowDays)

	return nil
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

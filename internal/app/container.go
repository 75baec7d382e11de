package app

import (
	"gorm.io/gorm"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
	"github.com/s0ph13d3f45w/landlord-ai/internal/config"
	"github.com/s0ph13d3f45w/landlord-ai/internal/infrastructure/ai"
	"github.com/s0ph13d3f45w/landlord-ai/internal/infrastructure/auth"
	"github.com/s0ph13d3f45w/landlord-ai/internal/infrastructure/database"
	"github.com/s0ph13d3f45w/landlord-ai/internal/infrastructure/notifications"
	"github.com/s0ph13d3f45w/landlord-ai/internal/infrastructure/repositories"
	"github.com/s0ph13d3f45w/landlord-ai/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *database.RedisClient

	// Repositories
	LandlordRepo domain.LandlordRepository
	PropertyRepo domain.PropertyRepository
	TenantRepo   domain.TenantRepository
	MessageRepo  domain.MessageRepository
	TokenRepo    domain.ResetTokenRepository
	SessionRepo  domain.SessionRepository

	// Services
	PasswordSvc     domain.PasswordService
	NotificationSvc domain.NotificationService
	CompletionSvc   domain.CompletionClient
	Resolver        domain.PhoneResolver
	Replies         domain.ReplyGenerator
	Escalations     domain.EscalationNotifier
	WebhookSvc      domain.WebhookService
	AuthSvc         domain.AuthService
	DashboardSvc    *services.DashboardService
	RecapSvc        *services.RecapService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initRedis()
	c.initRepositories()
	c.initServices()

	return c, nil
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

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
}

func (c *Container) initRepositories() {
	c.LandlordRepo = repositories.NewLandlordRepository(c.DB)
	c.PropertyRepo = repositories.NewPropertyRepository(c.DB)
	c.TenantRepo = repositories.NewTenantRepository(c.DB)
	c.MessageRepo = repositories.NewMessageRepository(c.DB)
	c.TokenRepo = repositories.NewResetTokenRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient.Client, c.Config.SessionTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioWhatsApp,
	)
	c.CompletionSvc = ai.NewOpenAIClient(
		c.Config.AIKey,
		c.Config.AIBaseURL,
		c.Config.AIModel,
		c.Config.AITimeout,
	)

	c.Resolver = services.NewPhoneResolver(c.TenantRepo, c.Config.CountryCode)
	c.Replies = services.NewReplyService(c.CompletionSvc)
	c.Escalations = services.NewEscalationService(c.NotificationSvc, c.MessageRepo, c.Config.FollowUpDelay)
	c.WebhookSvc = services.NewWebhookService(c.Resolver, c.MessageRepo, c.Replies, c.Escalations, c.Config.HistoryLimit)

	c.AuthSvc = services.NewAuthService(
		c.LandlordRepo,
		c.SessionRepo,
		c.TokenRepo,
		c.PasswordSvc,
		c.NotificationSvc,
		c.Config.SessionTTL,
		c.Config.ResetTokenTTL,
	)
	c.DashboardSvc = services.NewDashboardService(c.LandlordRepo, c.PropertyRepo, c.TenantRepo, c.MessageRepo)
	c.RecapSvc = services.NewRecapService(c.LandlordRepo, c.MessageRepo, c.NotificationSvc, c.Config.RecapHour)
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

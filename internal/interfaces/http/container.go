package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"farmgate/internal/infrastructure/auth"
	"farmgate/internal/infrastructure/config"
	"farmgate/internal/infrastructure/email"
	"farmgate/internal/infrastructure/ratelimit"
	"farmgate/internal/infrastructure/scheduler"
	"farmgate/internal/interfaces/http/middleware"
	"farmgate/internal/shared/db"
	"farmgate/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases, and handlers
// together, and owns the background services that run alongside the
// HTTP server.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware

	txManager      *db.TransactionManager
	passwordHasher *auth.BcryptPasswordHasher
	jwtService     *auth.JWTService
	emailService   *email.SMTPEmailService
	attemptLimiter *ratelimit.RedisAttemptLimiter

	handoverSweeper *scheduler.HandoverSweepScheduler
	sweeperCancel   context.CancelFunc
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initBackgroundServices()
	c.setupEngine()

	return c
}

func (c *Container) initInfrastructure() {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.txManager = db.NewTransactionManager(c.db)
	c.passwordHasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
	})
	c.attemptLimiter = ratelimit.NewRedisAttemptLimiter(c.redis, c.cfg.Claims.VerifyAttemptsPerMinute)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)
}

func (c *Container) initBackgroundServices() {
	interval := time.Duration(c.cfg.Claims.HandoverSweepMinutes) * time.Minute
	c.handoverSweeper = scheduler.NewHandoverSweepScheduler(c.ucs.revertHandoversUC, c.log, interval)
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackgroundServices launches the handover sweep loop.
func (c *Container) StartBackgroundServices() {
	ctx, cancel := context.WithCancel(context.Background())
	c.sweeperCancel = cancel
	c.handoverSweeper.Start(ctx)
}

// Shutdown stops background services and closes infrastructure connections.
func (c *Container) Shutdown() {
	if c.sweeperCancel != nil {
		c.sweeperCancel()
	}
	if c.handoverSweeper != nil {
		c.handoverSweeper.Stop()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}

package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ticketapp/internal/application/ticket/usecases"
	ticketdomain "ticketapp/internal/domain/ticket"
	"ticketapp/internal/infrastructure/auth"
	"ticketapp/internal/infrastructure/cache"
	"ticketapp/internal/infrastructure/config"
	"ticketapp/internal/infrastructure/repository"
	tickethandlers "ticketapp/internal/interfaces/http/handlers/ticket"
	"ticketapp/internal/interfaces/http/middleware"
	"ticketapp/internal/interfaces/http/routes"
	"ticketapp/internal/shared/logger"
	"ticketapp/internal/shared/utils"
)

// Container wires repositories, use cases, handlers, and middleware onto a
// gin engine. It owns no connections; the caller manages db and redis
// lifecycles.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	ticketRepo  ticketdomain.TicketRepository
	ticketCache ticketdomain.TicketCache

	authMiddleware *middleware.AuthMiddleware
	ticketHandler  *tickethandlers.TicketHandler
}

// NewContainer builds the full HTTP wiring. redisClient may be nil when
// neither the redis cache backend nor rate limiting is configured.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
		engine.Use(limiter.Limit())
	}

	c := &Container{
		engine: engine,
		cfg:    cfg,
		log:    log,
	}

	c.ticketRepo = repository.NewTicketRepository(db)
	c.ticketCache = buildTicketCache(cfg, redisClient, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, cfg.Auth.Security, log.Named("middleware.auth"))

	c.ticketHandler = tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(c.ticketRepo, c.ticketCache, log.Named("usecase.create_ticket")),
		usecases.NewGetTicketUseCase(c.ticketRepo, c.ticketCache, log.Named("usecase.get_ticket")),
		usecases.NewListTicketsUseCase(c.ticketRepo, log.Named("usecase.list_tickets")),
		usecases.NewListMyTicketsUseCase(c.ticketRepo, c.ticketCache, log.Named("usecase.list_my_tickets")),
		usecases.NewUpdateTicketUseCase(c.ticketRepo, c.ticketCache, log.Named("usecase.update_ticket")),
		usecases.NewDeleteTicketUseCase(c.ticketRepo, c.ticketCache, log.Named("usecase.delete_ticket")),
	)

	c.registerRoutes()

	return c
}

func (c *Container) registerRoutes() {
	c.engine.GET("/health", func(ctx *gin.Context) {
		utils.SuccessResponse(ctx, 200, "ok", gin.H{"status": "healthy"})
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

// Engine exposes the configured gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// buildTicketCache selects the cache backend from configuration. Unknown
// backends fall back to memory so a typo cannot disable caching entirely.
func buildTicketCache(cfg *config.Config, redisClient *redis.Client, log logger.Interface) ticketdomain.TicketCache {
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute

	switch cfg.Cache.Backend {
	case "redis":
		if redisClient != nil {
			return cache.NewRedisTicketCache(redisClient, ttl)
		}
		log.Warnw("redis cache backend configured but no redis client available, using memory cache")
	case "memory":
	default:
		log.Warnw("unknown cache backend, using memory cache", "backend", cfg.Cache.Backend)
	}

	return cache.NewMemoryTicketCache(ttl)
}

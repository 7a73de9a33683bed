package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"templar/internal/application/template/usecases"
	domain "templar/internal/domain/template"
	"templar/internal/infrastructure/cache"
	"templar/internal/infrastructure/config"
	"templar/internal/infrastructure/repository"
	renderinfra "templar/internal/infrastructure/template"
	"templar/internal/interfaces/http/handlers"
	"templar/internal/interfaces/http/middleware"
	"templar/internal/interfaces/http/routes"
	"templar/internal/shared/logger"
)

// Router wires the HTTP surface: repositories, cache, use cases, handlers
// and routes.
type Router struct {
	engine          *gin.Engine
	templateHandler *handlers.TemplateHandler
	redisClient     *redis.Client
	log             logger.Interface
}

// NewRouter creates the router with all dependencies wired.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	templateRepo := repository.NewTemplateRepository(db)
	redisClient, contentCache := initActiveContentCache(cfg, log)
	renderer := renderinfra.NewRenderer()

	createTemplateUC := usecases.NewCreateTemplateUseCase(templateRepo, log)
	createVersionUC := usecases.NewCreateVersionUseCase(templateRepo, log)
	getTemplateUC := usecases.NewGetTemplateUseCase(templateRepo, log)
	activateVersionUC := usecases.NewActivateVersionUseCase(templateRepo, contentCache, log)
	renderTemplateUC := usecases.NewRenderTemplateUseCase(templateRepo, contentCache, renderer, log)
	deleteVersionUC := usecases.NewDeleteVersionUseCase(templateRepo, log)
	deleteTemplateUC := usecases.NewDeleteTemplateUseCase(templateRepo, log)

	templateHandler := handlers.NewTemplateHandler(
		createTemplateUC, createVersionUC, getTemplateUC,
		activateVersionUC, renderTemplateUC,
		deleteVersionUC, deleteTemplateUC,
		log,
	)

	return &Router{
		engine:          engine,
		templateHandler: templateHandler,
		redisClient:     redisClient,
		log:             log,
	}
}

// initActiveContentCache connects to Redis and falls back to a noop cache
// when the backend is unreachable at startup; the service then serves every
// read from the store.
func initActiveContentCache(cfg *config.Config, log logger.Interface) (*redis.Client, domain.ActiveContentCache) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, active content caching disabled",
			"addr", cfg.Redis.GetAddr(),
			"error", err)
		_ = client.Close()
		return nil, cache.NewNoopActiveContentCache()
	}

	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	return client, cache.NewRedisActiveContentCache(client, cfg.Cache.TTL())
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	routes.SetupTemplateRoutes(r.engine, &routes.TemplateRouteConfig{
		TemplateHandler: r.templateHandler,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases resources held by the router.
func (r *Router) Close() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}

package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/server/http/handlers"
	"github.com/polkiloo/storeadmin/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	if cfg.AdminToken != "" && len(cfg.CORSAllowedOrigins) > 0 {
		// Preflight requests carry no token and match no route, so CORS runs engine wide.
		engine.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
		}))
	}

	webhookHandler := handlers.NewWebhookHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	api.POST("/webhook", webhookHandler.Handle)

	if cfg.AdminToken == "" {
		logger.Info("admin api disabled")
		return engine
	}

	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)

	stores := api.Group("/stores/:storeId")
	stores.Use(middleware.AdminTokenRequired(cfg.AdminToken))
	stores.Use(gzip.Gzip(gzip.DefaultCompression))
	stores.GET("/orders", orderHandler.List)
	stores.GET("/orders/:orderId", orderHandler.Get)
	stores.GET("/products/:productId", productHandler.Get)

	return engine
}

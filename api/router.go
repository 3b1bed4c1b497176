package api

import (
	"dashboard/api/client"
	"dashboard/api/general"
	"dashboard/api/health"
	"dashboard/api/login"
	"dashboard/api/management"
	"dashboard/api/middleware"
	"dashboard/api/sales"
	"dashboard/config"
	"dashboard/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Router Route configuration
type Router struct {
	engine               *gin.Engine
	config               *config.Config
	registry             *prometheus.Registry
	healthController     *health.Controller
	clientController     *client.Controller
	loginController      *login.Controller
	generalController    *general.Controller
	salesController      *sales.Controller
	managementController *management.Controller
}

// NewRouter Create route configuration
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	clientController *client.Controller,
	loginController *login.Controller,
	generalController *general.Controller,
	salesController *sales.Controller,
	managementController *management.Controller,
) *Router {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	registry := prometheus.NewRegistry()

	// Add middleware (order is important)
	engine.Use(middleware.RequestIDMiddleware())                      // 1. Generate request ID first
	engine.Use(middleware.RecoveryMiddleware())                       // 2. Recovery middleware
	engine.Use(middleware.LoggingMiddleware())                        // 3. Logging middleware
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))                  // 4. CORS
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit)) // 5. Rate limiting
	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector(registry)
		engine.Use(middleware.MetricsMiddleware(collector)) // 6. Request metrics
	}

	return &Router{
		engine:               engine,
		config:               cfg,
		registry:             registry,
		healthController:     healthController,
		clientController:     clientController,
		loginController:      loginController,
		generalController:    generalController,
		salesController:      salesController,
		managementController: managementController,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	r.healthController.RegisterRoutes(r.engine.Group(""))

	r.clientController.RegisterRoutes(r.engine.Group("/client"))
	r.loginController.RegisterRoutes(r.engine.Group("/login"))
	r.generalController.RegisterRoutes(r.engine.Group("/general"))
	r.salesController.RegisterRoutes(r.engine.Group("/sales"))
	r.managementController.RegisterRoutes(r.engine.Group("/management"))

	if r.config.Metrics.Enabled {
		r.engine.GET(r.config.Metrics.Path, gin.WrapH(metrics.Handler(r.registry)))
	}

	// Set root path route
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

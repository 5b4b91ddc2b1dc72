package routes

import (
	"hotelpro-backend/config"
	"hotelpro-backend/controllers"
	"hotelpro-backend/utils"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRouter(cfg *config.Config, h *controllers.Handler, gatherer prometheus.Gatherer, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(cfg.CORSOrigins, origin)
		},
	}))

	r.Use(config.PerformanceLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)

		auth.Use(utils.AuthMiddleware(cfg.JWTSecret))
		auth.GET("/me", h.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/halls", h.GetHalls)
		api.GET("/event-packages", h.GetEventPackages)

		// Event routes
		events := api.Group("/events")
		{
			events.GET("", h.GetEvents)
			events.GET("/stats", h.GetEventStats)
			events.GET("/new", h.GetEventDefaults)
			events.POST("", h.CreateEvent)
			events.GET("/:id", h.GetEvent)
			events.PUT("/:id", h.UpdateEvent)
			events.DELETE("/:id", h.DeleteEvent)
		}

		// Additional service routes
		services := api.Group("/additional-services")
		{
			services.GET("", h.GetServices)
			services.GET("/stats", h.GetServiceStats)
			services.GET("/options", h.GetServiceOptions)
			services.POST("", h.CreateService)
			services.GET("/:id", h.GetService)
			services.PUT("/:id", h.UpdateService)
			services.PATCH("/:id/toggle", h.ToggleService)
			services.DELETE("/:id", h.DeleteService)
		}

		// Dashboard routes
		api.GET("/dashboard", h.GetDashboardOverview)
	}

	return r
}

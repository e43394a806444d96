package bootstrap

import (
	"net/http"
	"time"

	"go-erp/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Production  bool
	CORSOrigins []string
	Tokens      middleware.TokenParser
	Registry    *prometheus.Registry
}

// NewRouter builds the engine with the global middleware chain and the operational
// endpoints. Feature routes are registered by the caller on the returned group.
func NewRouter(cfg RouterConfig, logger *zap.Logger) (*gin.Engine, *gin.RouterGroup) {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.RequestID())
	r.Use(middleware.NewMetrics(cfg.Registry).Handler())
	r.Use(middleware.Authenticate(cfg.Tokens))
	r.Use(middleware.ContextLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))

	return r, r.Group("/api/v1")
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey},
		ExposeHeaders:    []string{middleware.HeaderRequestID, "Content-Disposition"},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

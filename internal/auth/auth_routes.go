package auth

import (
	"go-erp/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes expects middleware.Authenticate to run on r already; login works
// without a bearer token because Authenticate lets anonymous requests through.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, loginRatePerSec float64, loginBurst int) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(loginRatePerSec), loginBurst), handler.Login)
		auth.GET("/me", middleware.RequireAuthenticated(), handler.Me)
	}
}

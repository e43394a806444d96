package rbac

import (
	"go-erp/internal/auth"
	"go-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.RequireAuthenticated())
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/policies", middleware.RequireRole(auth.RoleAdmin), handler.ListPolicies)
	}
}

package vehicle

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("/search",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceVehicle, rbac.ActionRead),
			handler.Search,
		)
		vehicles.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceVehicle, rbac.ActionRead),
			handler.GetByID,
		)
		vehicles.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceVehicle, rbac.ActionCreate),
			handler.Create,
		)
		vehicles.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceVehicle, rbac.ActionUpdate),
			handler.Update,
		)
		vehicles.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceVehicle, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

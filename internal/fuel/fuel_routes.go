package fuel

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	fuel := r.Group("/fuel")
	{
		fuel.POST("/search",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFuel, rbac.ActionRead),
			handler.Search,
		)
		fuel.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceFuel, rbac.ActionCreate),
			handler.Create,
		)
		fuel.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceFuel, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package customer

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	customers := r.Group("/customers")
	{
		customers.POST("/search",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCustomer, rbac.ActionRead),
			handler.Search,
		)
		customers.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCustomer, rbac.ActionRead),
			handler.GetByID,
		)
		customers.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCustomer, rbac.ActionCreate),
			handler.Create,
		)
		customers.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCustomer, rbac.ActionUpdate),
			handler.Update,
		)
		customers.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCustomer, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package permission

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	permissions := r.Group("/permissions")
	{
		permissions.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePermission, rbac.ActionRead),
			handler.GetAll,
		)
		permissions.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePermission, rbac.ActionCreate),
			handler.Create,
		)
	}
}

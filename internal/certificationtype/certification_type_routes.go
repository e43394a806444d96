package certificationtype

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	read := middleware.RBACAuthorize(rbacService, rbac.ResourceCertificationType, rbac.ActionRead)

	types := r.Group("/certification-types")
	{
		types.POST("/search", middleware.RateLimitByUser(5, 20), read, handler.Search)
		types.GET("/options", read, handler.GetOptions)
		types.GET("/:id", read, handler.GetByID)
		types.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCertificationType, rbac.ActionCreate),
			handler.Create,
		)
		types.PUT("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCertificationType, rbac.ActionUpdate),
			handler.Update,
		)
		types.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCertificationType, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package certification

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	certs := r.Group("/certifications")
	{
		certs.GET("/employee/:employeeId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCertification, rbac.ActionRead),
			handler.GetByEmployee,
		)
		certs.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCertification, rbac.ActionCreate),
			handler.Create,
		)
		certs.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceCertification, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package job

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client, logger *zap.Logger) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("/active/search",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionRead),
			handler.SearchActive,
		)
		jobs.POST("/done/search",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionRead),
			handler.SearchDone,
		)
		jobs.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionRead),
			handler.GetByID,
		)
		jobs.GET("/:id/delivery-note",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionRead),
			handler.DeliveryNote,
		)
		jobs.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		jobs.POST("/:id/complete",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionComplete),
			middleware.Idempotency(rdb, logger),
			handler.Complete,
		)
		jobs.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionUpdate),
			handler.Update,
		)
		jobs.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

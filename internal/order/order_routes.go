package order

import (
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client, logger *zap.Logger) {
	orders := r.Group("/orders")
	{
		orders.POST("/search",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrder, rbac.ActionRead),
			handler.Search,
		)
		orders.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrder, rbac.ActionRead),
			handler.GetByID,
		)
		orders.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrder, rbac.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		orders.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrder, rbac.ActionUpdate),
			handler.Update,
		)
		orders.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrder, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

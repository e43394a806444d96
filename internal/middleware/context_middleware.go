package middleware

import (
	"go-erp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a logger carrying the request id and, when authenticated, the
// employee on the request context. Services pick it up with contextutil.GetLogger.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = uuid.New().String()
			ctx = contextutil.WithRequestID(ctx, rid)
			c.Header(HeaderRequestID, rid)
		}

		fields := []zap.Field{zap.String("request_id", rid)}
		if p, ok := contextutil.GetPrincipal(ctx); ok {
			fields = append(fields,
				zap.Int64("employee_id", p.EmployeeID),
				zap.String("employee", p.Name),
				zap.String("role", p.Role),
			)
		}

		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

package middleware

import (
	"go-erp/internal/domain"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/response"

	autherrors "go-erp/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer a role/resource/action question.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok {
			response.Abort(c, autherrors.ErrUnauthenticated)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     principal.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
				zap.String("role", principal.Role),
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Abort(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			response.Abort(c, autherrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

package middleware

import (
	autherrors "go-erp/internal/auth/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequireAuthenticated rejects requests that reached it without a principal.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := contextutil.GetPrincipal(c.Request.Context()); !ok {
			response.Abort(c, autherrors.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

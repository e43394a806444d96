package middleware

import (
	"errors"
	"strings"

	autherrors "go-erp/internal/auth/errors"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextPrincipal = "principal"
	bearerPrefix     = "Bearer "
)

type TokenParser interface {
	ParsePrincipal(token string) (contextutil.Principal, error)
}

// Authenticate attaches the principal of a valid bearer token. Requests without a bearer
// header continue unauthenticated; a bearer token that fails verification is rejected here.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !found {
			c.Next()
			return
		}

		principal, err := tokens.ParsePrincipal(strings.TrimSpace(tokenString))
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				appErr = autherrors.ErrInvalidToken
			}
			response.Abort(c, appErr)
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Request = c.Request.WithContext(contextutil.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireRole lets the request through only when the principal holds one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok {
			response.Abort(c, autherrors.ErrUnauthenticated)
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		response.Abort(c, autherrors.ErrForbidden)
	}
}

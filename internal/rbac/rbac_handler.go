package rbac

import (
	"net/http"
	"strings"

	"go-erp/internal/domain"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce answers for the caller's own role; the role in the body is ignored.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, h.logger, apperror.MapValidationError(err))
		return
	}

	principal, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok {
		response.Fail(c, h.logger, apperror.ErrUnauthorized)
		return
	}
	req.Role = principal.Role
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Role: req.Role, Allowed: allowed})
}

func (h *Handler) ListPolicies(c *gin.Context) {
	policies, err := h.service.ListPolicies()
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, policies)
}

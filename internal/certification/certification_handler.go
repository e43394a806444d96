package certification

import (
	"net/http"

	certificationerrors "go-erp/internal/certification/errors"
	"go-erp/internal/shared/request"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("certification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certification.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCertificationRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := request.ParseID(c, "employeeId", certificationerrors.ErrInvalidEmployeeID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "id", certificationerrors.ErrInvalidCertificationID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package fuel

import (
	"net/http"

	fuelerrors "go-erp/internal/fuel/errors"
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
	l := zap.L().Named("fuel.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fuel.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFuelRequest
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

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "id", fuelerrors.ErrInvalidFuelID)
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

func (h *Handler) Search(c *gin.Context) {
	var criteria FuelSearchCriteria
	if err := request.BindCriteria(c, &criteria); err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	page, err := h.service.Search(c.Request.Context(), &criteria)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

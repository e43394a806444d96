package certificationtype

import (
	"net/http"

	certificationtypeerrors "go-erp/internal/certificationtype/errors"
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
	l := zap.L().Named("certificationtype.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certificationtype.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CertificationTypeRequest
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

func (h *Handler) GetByID(c *gin.Context) {
	id, err := request.ParseID(c, "id", certificationtypeerrors.ErrInvalidCertificationTypeID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetOptions(c *gin.Context) {
	opts, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, opts)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "id", certificationtypeerrors.ErrInvalidCertificationTypeID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	var req CertificationTypeRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "id", certificationtypeerrors.ErrInvalidCertificationTypeID)
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
	var criteria CertificationTypeSearchCriteria
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

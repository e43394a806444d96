package job

import (
	"context"
	"fmt"
	"net/http"

	joberrors "go-erp/internal/job/errors"
	"go-erp/internal/shared/request"
	"go-erp/internal/shared/response"
	"go-erp/internal/shared/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("job.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateJobRequest
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
	id, err := request.ParseID(c, "id", joberrors.ErrInvalidJobID)
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

func (h *Handler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "id", joberrors.ErrInvalidJobID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	var req UpdateJobRequest
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
	id, err := request.ParseID(c, "id", joberrors.ErrInvalidJobID)
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

func (h *Handler) Complete(c *gin.Context) {
	id, err := request.ParseID(c, "id", joberrors.ErrInvalidJobID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	var req CompleteJobRequest
	if err := request.BindCriteria(c, &req); err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	resp, err := h.service.Complete(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) SearchActive(c *gin.Context) {
	h.search(c, h.service.SearchActive)
}

func (h *Handler) SearchDone(c *gin.Context) {
	h.search(c, h.service.SearchDone)
}

func (h *Handler) search(c *gin.Context, run func(ctx context.Context, criteria *JobSearchCriteria) (search.PageResponse[JobTableInfo], error)) {
	var criteria JobSearchCriteria
	if err := request.BindCriteria(c, &criteria); err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	page, err := run(c.Request.Context(), &criteria)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) DeliveryNote(c *gin.Context) {
	id, err := request.ParseID(c, "id", joberrors.ErrInvalidJobID)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	data, filename, err := h.service.DeliveryNote(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

package request

import (
	"errors"
	"io"
	"strconv"

	"go-erp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string, invalid *apperror.AppError) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}

// BindCriteria decodes an optional JSON search body. An empty body leaves dst untouched.
func BindCriteria(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.MapValidationError(err)
	}
	return nil
}

// BindJSON decodes a required JSON body and maps validation failures.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

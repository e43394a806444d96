package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-erp/internal/employee"
	employeeerrors "go-erp/internal/employee/errors"
	employeeMock "go-erp/internal/employee/mock"
	"go-erp/internal/shared/search"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupHandler(t *testing.T) (*gin.Engine, *employeeMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	r := gin.New()
	r.POST("/employees/search", h.Search)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Create)
	r.PATCH("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Search(t *testing.T) {
	t.Run("empty body searches with defaults", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().
			Search(gomock.Any(), &employee.EmployeeSearchCriteria{}).
			Return(search.PageResponse[employee.EmployeeTableInfo]{Content: []employee.EmployeeTableInfo{}}, nil)

		w := doJSON(r, http.MethodPost, "/employees/search", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		assert.JSONEq(t, `{"content":[],"totalPages":0,"totalElements":0,"currentPage":0}`, string(env.Data))
	})

	t.Run("criteria are forwarded", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, c *employee.EmployeeSearchCriteria) (search.PageResponse[employee.EmployeeTableInfo], error) {
				require.NotNil(t, c.Name)
				assert.Equal(t, "ann", *c.Name)
				require.NotNil(t, c.Size)
				assert.Equal(t, 5, *c.Size)
				return search.PageResponse[employee.EmployeeTableInfo]{}, nil
			})

		w := doJSON(r, http.MethodPost, "/employees/search", map[string]any{"name": "ann", "size": 5})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := doJSON(r, http.MethodGet, "/employees/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decode(t, w).Ok)
	})

	t.Run("not found", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().GetByID(gomock.Any(), int64(8)).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		w := doJSON(r, http.MethodGet, "/employees/8", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound.Code, decode(t, w).Error.Code)
	})
}

func TestHandler_CreateAndDelete(t *testing.T) {
	r, svc := setupHandler(t)
	req := employee.CreateEmployeeRequest{Name: "Dora", Password: "pw", PermissionID: 3}
	svc.EXPECT().Create(gomock.Any(), req).Return(employee.EmployeeResponse{ID: 1, Name: "Dora", PermissionID: 3, Role: "DRIVER"}, nil)
	svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	w := doJSON(r, http.MethodPost, "/employees", req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/employees/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_UpdateRejectsDuplicate(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists)

	w := doJSON(r, http.MethodPatch, "/employees/2", map[string]any{"name": "Ann"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

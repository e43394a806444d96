package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-erp/internal/auth"
	autherrors "go-erp/internal/auth/errors"
	authMock "go-erp/internal/auth/mock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"details"`
	} `json:"error"`
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success", func(t *testing.T) {
		reqBody := auth.LoginRequest{Name: "Alice", Password: "p@ss1"}
		mockService.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(auth.LoginResponse{Token: "signed-token", ExpiresIn: 86400}, nil)

		body, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.True(t, res.Ok)
		assert.JSONEq(t, `{"token":"signed-token","expiresIn":86400}`, string(res.Data))
	})

	t.Run("login failed", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(auth.LoginResponse{}, autherrors.ErrLoginFailed)

		body, _ := json.Marshal(auth.LoginRequest{Name: "ghost", Password: "x"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var res envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Ok)
		assert.Equal(t, "LOGIN_FAILED", res.Error.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"name":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.True(t, strings.EqualFold("password", resp.Error.Details[0].Field))
		assert.Equal(t, "required", resp.Error.Details[0].Rule)
	})
}

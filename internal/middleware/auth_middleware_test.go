package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-erp/internal/auth"
	"go-erp/internal/domain"
	"go-erp/internal/middleware"
	rbacMock "go-erp/internal/rbac/mock"
	"go-erp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	m, err := auth.NewTokenManager("middleware-secret", time.Hour)
	require.NoError(t, err)
	return m
}

func principalEcho(c *gin.Context) {
	p, ok := contextutil.GetPrincipal(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"authenticated": ok, "name": p.Name, "role": p.Role})
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Error.Code
}

func TestAuthenticate(t *testing.T) {
	tokens := newTokens(t)
	router := newRouter()
	router.GET("/echo", middleware.Authenticate(tokens), principalEcho)

	permission := int64(2)
	valid, err := tokens.Issue(5, "Bob", &permission)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header continues anonymously", wantStatus: http.StatusOK, wantBody: `{"authenticated":false,"name":"","role":""}`},
		{name: "non-bearer scheme is ignored", header: "Basic Ym9iOnNlY3JldA==", wantStatus: http.StatusOK, wantBody: `{"authenticated":false,"name":"","role":""}`},
		{name: "valid bearer attaches principal", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: `{"authenticated":true,"name":"Bob","role":"USER"}`},
		{name: "invalid bearer is rejected", header: "Bearer forged.token.value", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, "INVALID_TOKEN", errorCode(t, w.Body.Bytes()))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := newTokens(t)
	router := newRouter()
	router.GET("/admin", middleware.Authenticate(tokens), middleware.RequireRole(auth.RoleAdmin), principalEcho)

	admin, user := int64(1), int64(2)
	adminToken, _ := tokens.Issue(1, "Ada", &admin)
	userToken, _ := tokens.Issue(2, "Bob", &user)

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, call("Bearer "+adminToken).Code)

	w := call("Bearer " + userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ACCESS_DENIED", errorCode(t, w.Body.Bytes()))

	w = call("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRBACAuthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	rbacService := rbacMock.NewMockService(ctrl)
	tokens := newTokens(t)

	router := newRouter()
	router.POST("/customers",
		middleware.Authenticate(tokens),
		middleware.RBACAuthorize(rbacService, "customer", "create"),
		principalEcho,
	)

	driver := int64(3)
	driverToken, _ := tokens.Issue(9, "Dan", &driver)

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/customers", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing principal", func(t *testing.T) {
		w := call("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		rbacService.EXPECT().
			Enforce(domain.EnforceRequest{Role: auth.RoleDriver, Resource: "customer", Action: "create"}).
			Return(false, nil)

		w := call("Bearer " + driverToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ACCESS_DENIED", errorCode(t, w.Body.Bytes()))
	})

	t.Run("allowed", func(t *testing.T) {
		rbacService.EXPECT().Enforce(gomock.Any()).Return(true, nil)

		w := call("Bearer " + driverToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		rbacService.EXPECT().Enforce(gomock.Any()).Return(false, errors.New("model broken"))

		w := call("Bearer " + driverToken)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w.Body.Bytes()))
	})
}

package bootstrap_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-erp/internal/bootstrap"
	"go-erp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubTokens struct{}

func (stubTokens) ParsePrincipal(token string) (contextutil.Principal, error) {
	if token == "good" {
		return contextutil.Principal{EmployeeID: 5, Name: "Bob", Role: "USER"}, nil
	}
	return contextutil.Principal{}, errors.New("bad token")
}

func newRouter(t *testing.T, origins []string) (*gin.Engine, *gin.RouterGroup) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return bootstrap.NewRouter(bootstrap.RouterConfig{
		CORSOrigins: origins,
		Tokens:      stubTokens{},
		Registry:    prometheus.NewRegistry(),
	}, zap.NewNop())
}

func TestNewRouter_Healthz(t *testing.T) {
	r, _ := newRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_MetricsCountRoutes(t *testing.T) {
	r, api := newRouter(t, nil)
	api.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping/7", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/v1/ping/:id",status="204"} 1`)
}

func TestNewRouter_PrincipalReachesHandlers(t *testing.T) {
	r, api := newRouter(t, nil)
	api.GET("/whoami", func(c *gin.Context) {
		p, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.String(http.StatusOK, p.Name)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bob", w.Body.String())
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	r, _ := newRouter(t, []string{"https://erp.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "https://erp.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://erp.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	audit.Log(ctx, bootstrap.AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "SERVER_SHUTDOWN", entry.ContextMap()["action"])
	assert.Equal(t, "req-9", entry.ContextMap()["request_id"])
}

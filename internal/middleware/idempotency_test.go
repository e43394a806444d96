package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-erp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIdempotency(t *testing.T) {
	const key = "order-123"
	cacheKey := middleware.IdempotencyCacheKey("/orders", "anonymous", key)
	lockKey := cacheKey + ":lock"

	setup := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		router := newRouter()
		router.POST("/orders", middleware.Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"orderNumber": "ORD-000001"})
		})
		return router, mock, &calls
	}

	post := func(router *gin.Engine, withKey bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		if withKey {
			req.Header.Set(middleware.HeaderIdempotencyKey, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("first request runs and stores the response", func(t *testing.T) {
		router, mock, calls := setup(t)
		stored, _ := json.Marshal(struct {
			Status int             `json:"status"`
			Body   json.RawMessage `json:"body"`
		}{http.StatusCreated, json.RawMessage(`{"orderNumber":"ORD-000001"}`)})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", middleware.IdempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, string(stored), middleware.IdempotencyResultTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(router, true)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns the stored response without running the handler", func(t *testing.T) {
		router, mock, calls := setup(t)
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"orderNumber":"ORD-000001"}}`)

		w := post(router, true)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get(middleware.HeaderReplayed))
		assert.JSONEq(t, `{"orderNumber":"ORD-000001"}`, w.Body.String())
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		router, mock, calls := setup(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", middleware.IdempotencyLockTTL).SetVal(false)

		w := post(router, true)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PROCESSING", errorCode(t, w.Body.Bytes()))
		assert.Equal(t, 0, *calls)
	})

	t.Run("no key skips redis", func(t *testing.T) {
		router, mock, calls := setup(t)

		w := post(router, false)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIdempotency_KeyIsScopedToRequestPath(t *testing.T) {
	const key = "k1"
	rdb, mock := redismock.NewClientMock()

	var ranFor []string
	router := newRouter()
	router.POST("/jobs/:id/complete", middleware.Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
		ranFor = append(ranFor, c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	for _, id := range []string{"1", "2"} {
		path := "/jobs/" + id + "/complete"
		cacheKey := middleware.IdempotencyCacheKey(path, "anonymous", key)
		stored, _ := json.Marshal(struct {
			Status int             `json:"status"`
			Body   json.RawMessage `json:"body"`
		}{http.StatusOK, json.RawMessage(`{"id":"` + id + `"}`)})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", middleware.IdempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, string(stored), middleware.IdempotencyResultTTL).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)
	}

	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodPost, "/jobs/"+id+"/complete", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(middleware.HeaderReplayed))
	}

	assert.Equal(t, []string{"1", "2"}, ranFor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

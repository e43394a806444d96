package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	IdempotencyLockTTL   = 30 * time.Second
	IdempotencyResultTTL = 24 * time.Hour
)

type idempotentResult struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyCacheKey(path, owner, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, owner, key)
}

// Idempotency replays the stored 2xx response for a repeated POST to the same
// path with the same Idempotency-Key, and rejects a duplicate that arrives while the first is in flight.
// Redis failures fall through to normal processing.
func Idempotency(rdb redis.Cmdable, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, logger)

		owner := "anonymous"
		if p, ok := contextutil.GetPrincipal(ctx); ok {
			owner = p.Name
		}
		cacheKey := IdempotencyCacheKey(c.Request.URL.Path, owner, idempKey)
		lockKey := cacheKey + ":lock"

		cached, err := rdb.Get(ctx, cacheKey).Bytes()
		switch {
		case err == nil:
			var res idempotentResult
			if jsonErr := json.Unmarshal(cached, &res); jsonErr == nil {
				c.Header(HeaderReplayed, "true")
				c.Data(res.Status, "application/json; charset=utf-8", res.Body)
				c.Abort()
				return
			}
			log.Warn("idempotency cache entry unreadable", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", IdempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Abort(c, apperror.ErrProcessing)
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		bg := context.WithoutCancel(ctx)
		if status := rec.Status(); status >= http.StatusOK && status < http.StatusMultipleChoices {
			data, _ := json.Marshal(idempotentResult{Status: status, Body: rec.body.Bytes()})
			if err := rdb.Set(bg, cacheKey, string(data), IdempotencyResultTTL).Err(); err != nil {
				log.Warn("idempotency store failed", zap.Error(err))
			}
		}
		if err := rdb.Del(bg, lockKey).Err(); err != nil {
			log.Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func idempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/subscriptions", func(c *gin.Context) {
		c.Set("user_id_validated", "u1")
		c.Next()
	}, middleware.Idempotency(rdb), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, mock
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/subscriptions:u1:k1"

	t.Run("first request runs handler and stores response", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"status":201,"body":{"ok":true}}`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postWithKey("k1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated key replays stored response", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postWithKey("k1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
	})

	t.Run("in-flight key conflicts", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postWithKey("k1"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postWithKey(""))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

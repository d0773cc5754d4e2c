package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedRouter(rdb *redis.Client, max int, window time.Duration) *gin.Engine {
	r := gin.New()
	r.POST("/login", RateLimit(rdb, max, window, KeyByIPAndPath()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		r := limitedRouter(rdb, 3, time.Minute)

		for i := 1; i <= 3; i++ {
			w := hit(r)
			require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i)
			assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(3-i), w.Header().Get("X-RateLimit-Remaining"))
		}

		w := hit(r)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("budget comes back after the window", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		r := limitedRouter(rdb, 1, time.Minute)

		require.Equal(t, http.StatusOK, hit(r).Code)
		require.Equal(t, http.StatusTooManyRequests, hit(r).Code)

		mr.FastForward(time.Minute + time.Second)
		assert.Equal(t, http.StatusOK, hit(r).Code)
	})

	t.Run("nil client disables the limiter", func(t *testing.T) {
		r := limitedRouter(nil, 1, time.Minute)
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, hit(r).Code)
		}
	})

	t.Run("fails open when redis is unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		mr.Close()

		r := limitedRouter(rdb, 1, time.Minute)
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hit(r).Code)
		}
	})
}

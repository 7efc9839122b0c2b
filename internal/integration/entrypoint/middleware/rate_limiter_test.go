package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedEngine(t *testing.T, maxRequests int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	miniRedis := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: miniRedis.Addr()})

	limiter := NewRateLimiterWithConfig(client, maxRequests, time.Minute)

	engine := gin.New()
	engine.Use(limiter.Middleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return engine, miniRedis
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		engine, _ := newLimitedEngine(t, 3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			engine.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		engine, _ := newLimitedEngine(t, 2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		}

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})

	t.Run("resets after the window expires", func(t *testing.T) {
		engine, miniRedis := newLimitedEngine(t, 1)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}

		miniRedis.FastForward(2 * time.Minute)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 after window expiry, got %d", w.Code)
		}
	})

	t.Run("fails open when redis is unreachable", func(t *testing.T) {
		engine, miniRedis := newLimitedEngine(t, 1)
		miniRedis.Close()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 when redis is down, got %d", w.Code)
		}
	})
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-todo-api/config"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any) {}

func newTestEngine(rateLimitPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.HTTPServer.RateLimitPerMin = rateLimitPerMin

	engine := gin.New()
	engine.Use(New(nopLogger{}, cfg).RateLimit())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRateLimit(t *testing.T) {
	t.Run("Throttles After Burst", func(t *testing.T) {
		engine := newTestEngine(10) // burst of 1

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			engine.ServeHTTP(rec, req)
			statuses = append(statuses, rec.Code)
		}

		if statuses[0] != http.StatusOK {
			t.Errorf("first request status = %d, want 200", statuses[0])
		}
		if statuses[2] != http.StatusTooManyRequests {
			t.Errorf("third request status = %d, want 429", statuses[2])
		}
	})

	t.Run("Sources Are Independent", func(t *testing.T) {
		engine := newTestEngine(10)

		exhaust := httptest.NewRequest(http.MethodGet, "/ping", nil)
		exhaust.RemoteAddr = "10.0.0.1:1234"
		for i := 0; i < 3; i++ {
			engine.ServeHTTP(httptest.NewRecorder(), exhaust)
		}

		rec := httptest.NewRecorder()
		other := httptest.NewRequest(http.MethodGet, "/ping", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		engine.ServeHTTP(rec, other)

		if rec.Code != http.StatusOK {
			t.Errorf("other client status = %d, want 200", rec.Code)
		}
	})

	t.Run("Disabled When Zero", func(t *testing.T) {
		engine := newTestEngine(0)

		for i := 0; i < 20; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			engine.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i, rec.Code)
			}
		}
	})
}

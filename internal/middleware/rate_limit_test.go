package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRateLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(mockLogger{}, Config{RequestsPerMinute: requestsPerMin})

	engine := gin.New()
	engine.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	router := newRateLimitedRouter(600) // burst of 60

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}
}

func TestRateLimitThrottlesBurst(t *testing.T) {
	router := newRateLimitedRouter(10) // burst of 1

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", first.Code, http.StatusOK)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(mockLogger{}, Config{RequestsPerMinute: 60})

	engine := gin.New()
	engine.Use(mw.CORS())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, 0)

	engine := gin.New()
	engine.Use(mw.RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("Generates ID When Absent", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got == "" {
			t.Error("expected a generated request ID header")
		}
	})

	t.Run("Propagates Incoming ID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "req-123" {
			t.Errorf("expected req-123, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(perMin int) *gin.Engine {
		mw := New(&mockLogger{}, perMin)
		engine := gin.New()
		engine.Use(mw.RateLimit())
		engine.GET("/", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}

	do := func(engine *gin.Engine) int {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("Blocks After Burst", func(t *testing.T) {
		engine := newEngine(10) // burst of 1
		if code := do(engine); code != http.StatusOK {
			t.Fatalf("first request should pass, got %d", code)
		}
		if code := do(engine); code != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %d", code)
		}
	})

	t.Run("Disabled When Zero", func(t *testing.T) {
		engine := newEngine(0)
		for i := 0; i < 20; i++ {
			if code := do(engine); code != http.StatusOK {
				t.Fatalf("expected all requests to pass, got %d on request %d", code, i+1)
			}
		}
	})
}

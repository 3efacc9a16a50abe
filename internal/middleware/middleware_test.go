package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
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

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw.RequestID())
	engine.POST("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doPing(engine *gin.Engine, ip string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestIDIsGenerated(t *testing.T) {
	engine := newEngine(middleware.New(&mockLogger{}, 0))

	w := doPing(engine, "10.0.0.1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	engine := newEngine(middleware.New(&mockLogger{}, 0))

	req, _ := http.NewRequest(http.MethodPost, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Errorf("expected client id to be echoed, got %q", got)
	}
}

func TestRateLimitDisabledPassesEverything(t *testing.T) {
	engine := newEngine(middleware.New(&mockLogger{}, 0))

	for i := 0; i < 50; i++ {
		if w := doPing(engine, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	// 60/min gives a burst of 6; the 7th immediate request must be rejected.
	engine := newEngine(middleware.New(&mockLogger{}, 60))

	var rejected bool
	for i := 0; i < 10; i++ {
		if w := doPing(engine, "10.0.0.1"); w.Code == http.StatusTooManyRequests {
			rejected = true
			break
		}
	}
	if !rejected {
		t.Error("expected at least one 429 within a 10-request burst")
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	engine := newEngine(middleware.New(&mockLogger{}, 60))

	// Exhaust one client's bucket.
	for i := 0; i < 10; i++ {
		doPing(engine, "10.0.0.1")
	}
	// A different client is unaffected.
	if w := doPing(engine, "10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("expected 200 for a fresh client, got %d", w.Code)
	}
}

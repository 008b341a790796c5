package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eaglebank/financeiro/internal/middleware"
	"github.com/gin-gonic/gin"
)

func newLimitedRouter(t *testing.T, trusted []string, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewTransactionHandler(&mockTransactionCommander{}, &mockTransactionQuerier{}, quietLogger())
	r, err := NewRouter(h, quietLogger(), RouterOptions{TrustedProxies: trusted, Limiter: limiter})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return r
}

func statusFrom(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req, _ := http.NewRequest(http.MethodGet, "/status", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.02, 1, time.Minute)
	r := newLimitedRouter(t, nil, limiter)

	limited := 0
	for i := 0; i < 20; i++ {
		if statusFrom(r, "203.0.113.7:4000", fmt.Sprintf("198.51.100.%d", i)) == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited != 19 {
		t.Errorf("expected 19 of 20 requests limited, got %d", limited)
	}
	if n := limiter.Len(); n != 1 {
		t.Errorf("expected a single bucket for the peer, got %d", n)
	}
}

func TestRateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.02, 1, time.Minute)
	r := newLimitedRouter(t, []string{"10.0.0.1"}, limiter)

	if code := statusFrom(r, "10.0.0.1:4000", "198.51.100.1"); code != http.StatusOK {
		t.Fatalf("first client: expected 200 got %d", code)
	}
	if code := statusFrom(r, "10.0.0.1:4000", "198.51.100.2"); code != http.StatusOK {
		t.Fatalf("second client behind the proxy: expected 200 got %d", code)
	}
	if code := statusFrom(r, "10.0.0.1:4000", "198.51.100.1"); code != http.StatusTooManyRequests {
		t.Fatalf("repeat client: expected 429 got %d", code)
	}
}

func TestNewRouterRejectsBadProxy(t *testing.T) {
	h := NewTransactionHandler(&mockTransactionCommander{}, &mockTransactionQuerier{}, quietLogger())
	if _, err := NewRouter(h, quietLogger(), RouterOptions{TrustedProxies: []string{"not-an-ip"}}); err == nil {
		t.Fatal("expected error for invalid proxy")
	}
}

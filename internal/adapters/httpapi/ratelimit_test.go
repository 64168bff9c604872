package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_BucketsPerCaller(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(60, 2)
	defer rl.Stop()

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/adopted-area-layer/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2, then limited.
	if got := serve("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("first request status = %d", got)
	}
	if got := serve("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("second request status = %d", got)
	}
	if got := serve("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", got)
	}

	// Other callers have their own bucket.
	if got := serve("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("other caller status = %d", got)
	}
}

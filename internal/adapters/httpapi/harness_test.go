package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memoryarearepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/arearepo"
	memoryclock "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/clock"
	memoryteamrepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/teamrepo"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/areas"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/teams"
)

// newTestHandler wires the full router over memory adapters with dev auth.
// Callers authenticate by setting X-Debug-Principal.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	clk := memoryclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	areasSvc := areas.NewService(memoryarearepo.NewRepo(), clk)
	teamsSvc := teams.NewService(memoryteamrepo.NewRepo(), clk)

	s := NewServer(areasSvc, teamsSvc, nil)
	return NewRouter(s, RouterOptions{
		Auth: NewDevAuthMiddleware(""),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, principal string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if principal != "" {
		req.Header.Set("X-Debug-Principal", principal)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func validAreaBody() map[string]any {
	return map[string]any{
		"area_name":     "Niles Beach",
		"adoptee_name":  "Harbor Stewards",
		"email":         "stewards@example.com",
		"adoption_type": "indefinite",
		"lng":           -70.6460,
		"lat":           42.5990,
		"city":          "Gloucester",
		"state":         "MA",
		"country":       "USA",
	}
}

func validTeamBody() map[string]any {
	return map[string]any{
		"name":    "Cape Ann Coastsweep",
		"lng":     -70.6620,
		"lat":     42.6159,
		"city":    "Gloucester",
		"state":   "MA",
		"country": "USA",
	}
}

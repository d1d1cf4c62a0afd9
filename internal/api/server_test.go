package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mkositsyn/temprun/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(":0", store, log.New(io.Discard)), store
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestProgressEndpoint(t *testing.T) {
	s, store := newTestServer(t)
	store.SaveRun(150, 4, 20)
	store.SaveRun(90, 2, 10)

	rec := get(t, s, "/api/progress")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body progressResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.HighScore != 150 {
		t.Errorf("high_score = %d, expected 150", body.HighScore)
	}
	if body.TotalCoins != 6 {
		t.Errorf("total_coins = %d, expected 6", body.TotalCoins)
	}
}

func TestRunsEndpointSorting(t *testing.T) {
	s, store := newTestServer(t)
	for _, score := range []int{50, 200, 120} {
		store.SaveRun(score, 0, 5)
	}

	rec := get(t, s, "/api/runs?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var runs []runResponse
	if err := json.NewDecoder(rec.Body).Decode(&runs); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, expected 2", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 120 {
		t.Errorf("default sort should be best-first, got %d then %d",
			runs[0].Score, runs[1].Score)
	}

	rec = get(t, s, "/api/runs?sort=recent&limit=1")
	runs = nil
	if err := json.NewDecoder(rec.Body).Decode(&runs); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 120 {
		t.Errorf("recent sort should return the newest run, got %+v", runs)
	}
}

func TestRunsEndpointRejectsBadLimit(t *testing.T) {
	s, _ := newTestServer(t)

	for _, limit := range []string{"0", "-5", "101", "abc"} {
		rec := get(t, s, "/api/runs?limit="+limit)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, expected 400", limit, rec.Code)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	s, store := newTestServer(t)
	store.SaveRun(100, 1, 10)
	store.SaveRun(300, 3, 30)

	rec := get(t, s, "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var stats statsResponse
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if stats.RunCount != 2 || stats.HighScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg_score = %v, expected 200", stats.AvgScore)
	}
}

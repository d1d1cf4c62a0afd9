// Package api exposes the run history over HTTP as a small JSON API, so a
// shared runner host (for example one serving SSH play) can publish its
// scoreboard.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkositsyn/temprun/internal/storage"
)

// Server serves the read-only scores API.
type Server struct {
	store  *storage.Store
	logger *log.Logger
	http   *http.Server
}

// New creates a server listening on addr, backed by the given store.
func New(addr string, store *storage.Store, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/progress", s.handleProgress)
		r.Get("/runs", s.handleRuns)
		r.Get("/stats", s.handleStats)
	})

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting scores API", "address", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the underlying router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type progressResponse struct {
	HighScore  int `json:"high_score"`
	TotalCoins int `json:"total_coins"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.store.Load()
	if err != nil {
		s.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{
		HighScore:  progress.HighScore,
		TotalCoins: progress.TotalCoins,
	})
}

type runResponse struct {
	Score     int       `json:"score"`
	Coins     int       `json:"coins"`
	Duration  float64   `json:"duration_secs"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			http.Error(w, "limit must be an integer in [1, 100]", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	var (
		runs []storage.Run
		err  error
	)
	if r.URL.Query().Get("sort") == "recent" {
		runs, err = s.store.RecentRuns(limit)
	} else {
		runs, err = s.store.TopRuns(limit)
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	out := make([]runResponse, len(runs))
	for i, run := range runs {
		out[i] = runResponse{
			Score:     run.Score,
			Coins:     run.Coins,
			Duration:  run.Duration,
			CreatedAt: run.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

type statsResponse struct {
	RunCount   int     `json:"run_count"`
	HighScore  int     `json:"high_score"`
	AvgScore   float64 `json:"avg_score"`
	TotalCoins int     `json:"total_coins"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStats()
	if err != nil {
		s.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		RunCount:   stats.RunCount,
		HighScore:  stats.HighScore,
		AvgScore:   stats.AvgScore,
		TotalCoins: stats.TotalCoins,
	})
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Response write failures are the client's problem
	json.NewEncoder(w).Encode(v)
}

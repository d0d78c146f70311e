// Package api provides the HTTP server for Kintsugi.
// It exposes the journal and engagement engine to local dashboard clients.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kintsugi-journal/kintsugi/internal/app/affirmation"
	"github.com/kintsugi-journal/kintsugi/internal/app/engagement"
	"github.com/kintsugi-journal/kintsugi/internal/health"
)

// Version reported by /api/version.
const Version = "0.1.0"

// Server is the Kintsugi HTTP API server.
type Server struct {
	engagement     *engagement.Service
	affirmations   *affirmation.Service
	health         *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(eng *engagement.Service, aff *affirmation.Service) *Server {
	return &Server{engagement: eng, affirmations: aff}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth attaches the periodic health checker to /health.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if s.health == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		status := http.StatusOK
		if !s.health.IsHealthy() {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]interface{}{
			"healthy": s.health.IsHealthy(),
			"checks":  s.health.Statuses(),
		})
	})
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": Version})
	})

	// Journal
	r.Route("/api/journal", func(r chi.Router) {
		r.Post("/entries", s.handleAddEntry)
		r.Get("/entries", s.handleListEntries)
	})

	// Engagement engine
	r.Route("/api/engagement", func(r chi.Router) {
		r.Get("/streak", s.handleStreak)
		r.Post("/streak/recompute", s.handleRecomputeStreak)
		r.Get("/summary", s.handleSummary)
		r.Get("/achievements", s.handleAchievements)
		r.Post("/achievements/check", s.handleCheckAchievements)
		r.Post("/visit", s.handleVisit)
		r.Post("/affirmations/viewed", s.handleAffirmationViewed)
		r.Post("/insights/viewed", s.handleInsightViewed)
		r.Get("/notifications", s.handleNotifications)
		r.Post("/notifications/{id}/shown", s.handleNotificationShown)
	})

	// Affirmation deck
	r.Route("/api/affirmations", func(r chi.Router) {
		r.Get("/daily", s.handleDailyAffirmation)
		r.Get("/", s.handleListAffirmations)
		r.Post("/", s.handleAddAffirmation)
		r.Delete("/{id}", s.handleRemoveAffirmation)
	})

	// Profile and theme (side inputs for personalization achievements)
	r.Get("/api/profile", s.handleGetProfile)
	r.Put("/api/profile", s.handlePutProfile)
	r.Post("/api/theme/changed", s.handleThemeChanged)

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local dashboard development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package server

import (
	"log/slog"
	"net/http"

	"github.com/Mriskiali/motion-fits/internal/reminder"
	"github.com/Mriskiali/motion-fits/internal/session"
	"github.com/Mriskiali/motion-fits/internal/store"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	sessions *session.Manager
	goals    *reminder.Service
	log      *slog.Logger
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(st *store.Store, sessions *session.Manager, goals *reminder.Service, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:    st,
		sessions: sessions,
		goals:    goals,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read-only endpoints
	s.router.Get("/api/v1/plans", s.handleListPlans)
	s.router.Get("/api/v1/plans/{id}", s.handleGetPlan)
	s.router.Get("/api/v1/days/{date}", s.handleGetDay)
	s.router.Get("/api/v1/tracking/rest", s.handleRestRemaining)
	s.router.Get("/api/v1/session", s.handleGetSession)
	s.router.Get("/api/v1/history", s.handleHistory)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/stats/pbs", s.handleRecentPBs)
	s.router.Get("/api/v1/stats/onerm", s.handleOneRMHistory)
	s.router.Get("/api/v1/goals", s.handleGetGoals)
	s.router.Get("/api/v1/goals/next-reminder", s.handleNextReminder)
	s.router.Get("/api/v1/prefs", s.handleGetPrefs)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/plans", s.handleCreatePlan)
		r.Delete("/api/v1/plans/{id}", s.handleDeletePlan)
		r.Put("/api/v1/days/{date}", s.handleAssignDay)
		r.Post("/api/v1/tracking/counts", s.handleSetCount)
		r.Post("/api/v1/tracking/completion", s.handleToggleCompletion)
		r.Post("/api/v1/tracking/rest", s.handleStartRest)
		r.Delete("/api/v1/tracking/rest", s.handleCancelRest)
		r.Post("/api/v1/sets", s.handleLogSet)
		r.Post("/api/v1/session/open", s.handleOpenSession)
		r.Post("/api/v1/session/finish", s.handleFinishSession)
		r.Delete("/api/v1/history", s.handleClearHistory)
		r.Put("/api/v1/goals", s.handleApplyGoals)
		r.Put("/api/v1/prefs", s.handleSetPrefs)
	})
}

package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"tailscale.com/client/local"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/session"
	"github.com/claude/liftlog/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db       *storage.DB
	sessions *session.Manager
	timers   config.TimersConfig
	log      *slog.Logger
	router   chi.Router
	identity func(http.Handler) http.Handler
}

// New creates a new Server with all routes configured. Identity defaults to
// the dev middleware; call SetTailscale before serving to resolve real users.
func New(db *storage.DB, sessions *session.Manager, timers config.TimersConfig, log *slog.Logger) *Server {
	s := &Server{
		db:       db,
		sessions: sessions,
		timers:   timers,
		log:      log,
		router:   chi.NewRouter(),
		identity: DevIdentity,
	}
	s.routes()
	return s
}

// SetTailscale switches identity resolution to tailnet WhoIs lookups.
func (s *Server) SetTailscale(lc *local.Client) {
	s.identity = TailscaleIdentity(lc, s.db, s.log)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	// Indirection so SetTailscale can swap identity after construction.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.identity(next).ServeHTTP(w, r)
		})
	})

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/me", s.handleMe)
		r.Get("/config/timers", s.handleTimerConfig)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartSession)
			r.Get("/resumable", s.handleResumableSession)
			r.Get("/{id}", s.handleGetSession)
			r.Post("/{id}/pause", s.handlePauseSession)
			r.Post("/{id}/resume", s.handleResumeSession)
			r.Post("/{id}/complete", s.handleCompleteSession)
			r.Delete("/{id}", s.handleDeleteSession)
			r.Put("/{id}/exercises/{order}/weight", s.handleUpdateSessionWeight)
		})

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", s.handleListTemplates)
			r.Post("/", s.handleCreateTemplate)
			r.Post("/copy", s.handleCopyTemplates)
			r.Put("/{id}", s.handleUpdateTemplate)
			r.Delete("/{id}", s.handleDeleteTemplate)
			r.Post("/{id}/move", s.handleMoveTemplate)
		})

		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleHistoryDetail)
		r.Get("/stats", s.handleStats)
		r.Get("/stats/bests", s.handlePersonalBests)

		r.Route("/trash", func(r chi.Router) {
			r.Get("/", s.handleListTrash)
			r.Post("/{id}/restore", s.handleRestoreSession)
			r.Delete("/{id}", s.handlePurgeSession)
		})

		r.Get("/plan", s.handleGetPlan)
		r.Put("/plan", s.handleSavePlan)
	})
}

package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/recoverytrack/internal/catalog"
	"github.com/meltforce/recoverytrack/internal/history"
	"github.com/meltforce/recoverytrack/internal/record"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog *catalog.Catalog
	record  *record.Store
	ledger  *history.Ledger
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// mutating routes open (local / tsnet deployments).
func New(cat *catalog.Catalog, rec *record.Store, led *history.Ledger, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		catalog: cat,
		record:  rec,
		ledger:  led,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
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

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read surface
		r.Get("/today", s.handleToday)
		r.Get("/exercises", s.handleListExercises)
		r.Get("/history", s.handleHistory)
		r.Get("/history/recent", s.handleRecentHistory)
		r.Get("/trends/{metric}", s.handleTrend)
		r.Get("/areas", s.handleAreas)
		r.Get("/areas/suggested", s.handleSuggestedAreas)
		r.Get("/pain-notes", s.handlePainNotes)
		r.Get("/pain-notes/recent", s.handleRecentPainNotes)
		r.Get("/report", s.handleReport)

		// Mutations (API key required when configured)
		r.Group(func(r chi.Router) {
			if s.apiKey != "" {
				r.Use(APIKeyAuth(s.apiKey))
			}
			r.Post("/today/finalize", s.handleFinalizeDay)
			r.Post("/today/exercises/{id}", s.handleAddExercise)
			r.Delete("/today/exercises/{id}", s.handleRemoveExercise)
			r.Post("/today/exercises/{id}/toggle", s.handleToggleExercise)
			r.Put("/today/exercises/{id}/reps", s.handleSetReps)
			r.Put("/today/pain", s.handleSetPainLevel)
			r.Put("/today/pain/notes", s.handleSetPainNotes)
			r.Post("/today/water", s.handleAddWater)
			r.Delete("/today/water", s.handleRemoveWater)
			r.Post("/exercises", s.handleAddCustomExercise)
			r.Patch("/exercises/{id}", s.handleUpdateExercise)
			r.Post("/areas", s.handleAddArea)
			r.Delete("/areas/{name}", s.handleRemoveArea)
			r.Post("/pain-notes", s.handleAddPainNote)
		})
	})
}

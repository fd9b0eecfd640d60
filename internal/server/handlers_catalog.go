package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/recoverytrack/internal/catalog"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.List())
}

func (s *Server) handleAddCustomExercise(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		TargetArea  string `json:"targetArea"`
		RepRange    string `json:"repRange"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	def, ok := s.catalog.AddCustom(r.Context(), body.Name, body.Description, body.TargetArea, body.RepRange)
	if !ok {
		writeError(w, http.StatusBadRequest, "exercise name is required")
		return
	}
	writeJSON(w, http.StatusCreated, def)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var patch catalog.FieldPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if !s.catalog.Update(r.Context(), chi.URLParam(r, "id"), patch) {
		writeError(w, http.StatusNotFound, "unknown exercise")
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.List())
}

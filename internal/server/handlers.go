package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleFinalizeDay(w http.ResponseWriter, r *http.Request) {
	if !s.record.FinalizeDay(r.Context()) {
		writeError(w, http.StatusInternalServerError, "saving to history failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	s.record.AddExercise(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	s.record.RemoveExercise(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleToggleExercise(w http.ResponseWriter, r *http.Request) {
	s.record.ToggleExercise(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleSetReps(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reps int `json:"reps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.record.SetActualReps(r.Context(), chi.URLParam(r, "id"), body.Reps) {
		writeError(w, http.StatusBadRequest, "reps must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleSetPainLevel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level int `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.record.SetPainLevel(r.Context(), body.Level) {
		writeError(w, http.StatusBadRequest, "pain level must be between 0 and 10")
		return
	}
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleSetPainNotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.record.SetPainNotes(r.Context(), body.Notes)
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleAddWater(w http.ResponseWriter, r *http.Request) {
	s.record.AddWater(r.Context())
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

func (s *Server) handleRemoveWater(w http.ResponseWriter, r *http.Request) {
	s.record.RemoveWater(r.Context())
	writeJSON(w, http.StatusOK, s.record.Today(r.Context()))
}

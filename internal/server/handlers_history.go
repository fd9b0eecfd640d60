package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/recoverytrack/internal/history"
	"github.com/meltforce/recoverytrack/internal/report"
	"github.com/meltforce/recoverytrack/internal/trends"
)

// windowParam reads the n query parameter, falling back to def.
func windowParam(r *http.Request, def int) int {
	if v := r.URL.Query().Get("n"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.History(r.Context()))
}

func (s *Server) handleRecentHistory(w http.ResponseWriter, r *http.Request) {
	n := windowParam(r, trends.RecentEntriesWindow)
	writeJSON(w, http.StatusOK, s.ledger.Recent(r.Context(), n))
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	metric, ok := trends.MetricByName(chi.URLParam(r, "metric"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown metric (want pain, water, or exercise)")
		return
	}

	series := trends.ExtractSeries(s.ledger.History(r.Context()), metric)
	resp := map[string]any{
		"metric":  metric.Name,
		"series":  series,
		"recent":  trends.RecentWindow(series, windowParam(r, trends.DefaultChartWindow)),
		"summary": trends.Summarize(series, metric),
	}
	if latest, ok := trends.Latest(series); ok {
		resp["latest"] = latest
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Areas(r.Context()))
}

func (s *Server) handleSuggestedAreas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, history.SuggestedAreas)
}

func (s *Server) handleAddArea(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.ledger.AddArea(r.Context(), body.Name) {
		writeError(w, http.StatusBadRequest, "area name is empty or already tracked")
		return
	}
	writeJSON(w, http.StatusCreated, s.ledger.Areas(r.Context()))
}

func (s *Server) handleRemoveArea(w http.ResponseWriter, r *http.Request) {
	s.ledger.RemoveArea(r.Context(), chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, s.ledger.Areas(r.Context()))
}

func (s *Server) handlePainNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.PainNotes(r.Context()))
}

func (s *Server) handleRecentPainNotes(w http.ResponseWriter, r *http.Request) {
	n := windowParam(r, trends.PainNoteSummaryWindow)
	writeJSON(w, http.StatusOK, s.ledger.RecentPainNotes(r.Context(), n))
}

func (s *Server) handleAddPainNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InjuryArea string `json:"injuryArea"`
		Note       string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.ledger.AddPainNote(r.Context(), body.InjuryArea, body.Note) {
		writeError(w, http.StatusBadRequest, "injury area and note text are required")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"saved": true})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep := report.Build(s.ledger.History(r.Context()), s.ledger.PainNotes(r.Context()), time.Now())
	writeJSON(w, http.StatusOK, rep)
}

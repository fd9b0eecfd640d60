// Package report assembles the read-only export aggregate. Document
// formatting is the consumer's job; this only supplies the structured data.
package report

import (
	"time"

	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/trends"
)

// Summary holds the headline averages for the export.
type Summary struct {
	AvgPain                 float64 `json:"avgPain"`
	AvgWater                float64 `json:"avgWater"`
	TotalExercisesCompleted int     `json:"totalExercisesCompleted"`
}

// Report is the full export aggregate handed to a rendering collaborator.
type Report struct {
	GeneratedAt      time.Time             `json:"generatedAt"`
	TotalDaysTracked int                   `json:"totalDaysTracked"`
	Summary          Summary               `json:"summary"`
	DailyEntries     []models.HistoryEntry `json:"dailyEntries"`
	PainNotes        []models.PainNote     `json:"painNotes"`
}

// Build derives a Report from ledger snapshots.
func Build(entries []models.HistoryEntry, notes []models.PainNote, now time.Time) Report {
	painAvg := trends.Summarize(trends.ExtractSeries(entries, trends.Pain), trends.Pain).Average
	waterAvg := trends.Summarize(trends.ExtractSeries(entries, trends.Water), trends.Water).Average

	totalCompleted := 0
	for _, e := range entries {
		totalCompleted += e.CompletedExercises
	}

	return Report{
		GeneratedAt:      now,
		TotalDaysTracked: len(entries),
		Summary: Summary{
			AvgPain:                 painAvg,
			AvgWater:                waterAvg,
			TotalExercisesCompleted: totalCompleted,
		},
		DailyEntries: entries,
		PainNotes:    notes,
	}
}

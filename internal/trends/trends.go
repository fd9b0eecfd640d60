// Package trends derives numeric series and summary statistics from the
// history ledger. Everything here is a pure function over a ledger snapshot;
// there is no cached state to go stale.
package trends

import (
	"math"

	"github.com/meltforce/recoverytrack/internal/models"
)

// Polarity says which direction of change counts as improvement for a metric.
type Polarity int

const (
	// HigherIsBetter: rising values (water, completed exercises) improve.
	HigherIsBetter Polarity = iota
	// LowerIsBetter: falling values (pain) improve.
	LowerIsBetter
)

// Trend labels returned by Summarize.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Presentation window sizes. These are defaults for consumers, not
// constraints of the algorithms.
const (
	DefaultChartWindow    = 14
	RecentEntriesWindow   = 5
	PainNoteHistoryWindow = 10
	PainNoteSummaryWindow = 3
)

// minTrendPoints is the series length below which the trend is always stable.
const minTrendPoints = 6

// Metric identifies one numeric projection of a history entry.
type Metric struct {
	Name     string
	Polarity Polarity
}

var (
	Pain     = Metric{Name: "pain", Polarity: LowerIsBetter}
	Water    = Metric{Name: "water", Polarity: HigherIsBetter}
	Exercise = Metric{Name: "exercise", Polarity: HigherIsBetter}
)

// MetricByName resolves a metric from its wire name.
func MetricByName(name string) (Metric, bool) {
	switch name {
	case Pain.Name:
		return Pain, true
	case Water.Name:
		return Water, true
	case Exercise.Name:
		return Exercise, true
	}
	return Metric{}, false
}

// Point is one dated value in a metric series.
type Point struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// Summary holds the statistics for a full series. Average is the arithmetic
// mean over the whole series, rounded to one decimal.
type Summary struct {
	Average float64 `json:"average"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Trend   string  `json:"trend"`
}

// ExtractSeries projects one metric out of each history entry, in ledger
// order. Days with no recorded pain level are excluded from the pain series;
// water and exercise values default to zero rather than dropping the day.
func ExtractSeries(entries []models.HistoryEntry, m Metric) []Point {
	series := make([]Point, 0, len(entries))
	for _, e := range entries {
		switch m.Name {
		case Pain.Name:
			if e.PainLevel == nil || *e.PainLevel < 0 {
				continue
			}
			series = append(series, Point{Date: e.Date, Value: *e.PainLevel})
		case Water.Name:
			series = append(series, Point{Date: e.Date, Value: max(e.WaterIntake, 0)})
		case Exercise.Name:
			series = append(series, Point{Date: e.Date, Value: max(e.CompletedExercises, 0)})
		}
	}
	return series
}

// RecentWindow returns the last n points in series order.
func RecentWindow(series []Point, n int) []Point {
	if n < 0 {
		n = 0
	}
	if n > len(series) {
		n = len(series)
	}
	out := make([]Point, n)
	copy(out, series[len(series)-n:])
	return out
}

// Latest returns the most recent point of the series.
func Latest(series []Point) (Point, bool) {
	if len(series) == 0 {
		return Point{}, false
	}
	return series[len(series)-1], true
}

// Summarize computes average/min/max over the full series and classifies the
// trend by comparing the mean of the last three values against the mean of
// the first three, interpreted through the metric's polarity. Series shorter
// than six points are always stable; an empty series is all zeros.
func Summarize(series []Point, m Metric) Summary {
	if len(series) == 0 {
		return Summary{Trend: TrendStable}
	}

	sum := 0
	minV, maxV := series[0].Value, series[0].Value
	for _, p := range series {
		sum += p.Value
		minV = min(minV, p.Value)
		maxV = max(maxV, p.Value)
	}
	avg := math.Round(float64(sum)/float64(len(series))*10) / 10

	return Summary{
		Average: avg,
		Min:     minV,
		Max:     maxV,
		Trend:   classify(series, m.Polarity),
	}
}

func classify(series []Point, p Polarity) string {
	if len(series) < minTrendPoints {
		return TrendStable
	}
	early := meanOf(series[:3])
	recent := meanOf(series[len(series)-3:])
	switch {
	case recent == early:
		return TrendStable
	case recent > early:
		if p == HigherIsBetter {
			return TrendImproving
		}
		return TrendDeclining
	default:
		if p == HigherIsBetter {
			return TrendDeclining
		}
		return TrendImproving
	}
}

func meanOf(points []Point) float64 {
	sum := 0
	for _, p := range points {
		sum += p.Value
	}
	return float64(sum) / float64(len(points))
}

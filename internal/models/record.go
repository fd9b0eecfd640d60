package models

import "time"

// DayFormat is the calendar-day key used everywhere a record is dated.
const DayFormat = "2006-01-02"

// Day formats t as a calendar-day key in local time.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ExerciseDefinition is a catalog entry. The ID is immutable; the remaining
// fields may be edited in place by the catalog.
type ExerciseDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetArea  string `json:"targetArea"`
	RepRange    string `json:"repRange"`
}

// DailyExerciseEntry is a definition snapshot embedded in a day, plus the
// day's completion state. Edits to the catalog after a day is archived do not
// reach the archived copy.
type DailyExerciseEntry struct {
	ExerciseDefinition
	Completed  bool `json:"completed"`
	ActualReps *int `json:"actualReps,omitempty"`
}

// DailyRecord is the single live record for one calendar day.
type DailyRecord struct {
	Date        string               `json:"date"`
	Exercises   []DailyExerciseEntry `json:"exercises"`
	PainLevel   *int                 `json:"painLevel"`
	PainNotes   string               `json:"painNotes"`
	WaterIntake int                  `json:"waterIntake"`
}

// NewDailyRecord returns an empty record for the given day.
func NewDailyRecord(date string) DailyRecord {
	return DailyRecord{Date: date, Exercises: []DailyExerciseEntry{}}
}

// Clone returns a deep copy so callers can't mutate the live record.
func (r DailyRecord) Clone() DailyRecord {
	out := r
	out.Exercises = make([]DailyExerciseEntry, len(r.Exercises))
	copy(out.Exercises, r.Exercises)
	if r.PainLevel != nil {
		level := *r.PainLevel
		out.PainLevel = &level
	}
	return out
}

// CompletedCount returns how many of the day's exercises are marked done.
func (r DailyRecord) CompletedCount() int {
	n := 0
	for _, e := range r.Exercises {
		if e.Completed {
			n++
		}
	}
	return n
}

// HistoryEntry is an immutable archived snapshot of a finalized day.
type HistoryEntry struct {
	DailyRecord
	Timestamp          time.Time `json:"timestamp"`
	CompletedExercises int       `json:"completedExercises"`
	TotalExercises     int       `json:"totalExercises"`
}

// PainNote is one append-only note tagged with an injury area.
type PainNote struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	InjuryArea string    `json:"injuryArea"`
	Note       string    `json:"note"`
	Timestamp  time.Time `json:"timestamp"`
}

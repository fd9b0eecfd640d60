// Package record holds the state machine for the live daily record: exercise
// selections, pain rating and notes, and water count, with write-through
// persistence and day-rollover handling.
package record

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/storage"
)

// Definitions looks up catalog entries when an exercise is added to the day.
type Definitions interface {
	Get(id string) (models.ExerciseDefinition, bool)
}

// Archive receives the day's snapshot on finalization.
type Archive interface {
	Append(ctx context.Context, rec models.DailyRecord) bool
}

// Store owns the single live DailyRecord. Every mutating operation first
// checks the stored date against today and resets to a fresh record when the
// day has rolled over, then mutates, then persists. In-memory state stays
// authoritative for the session when a persist fails. Safe for concurrent use;
// handlers run one goroutine per request.
type Store struct {
	store   *storage.Store
	defs    Definitions
	archive Archive
	log     *slog.Logger
	now     func() time.Time

	mu  sync.Mutex // guards rec
	rec models.DailyRecord
}

// New creates a Store. Call Initialize before use.
func New(store *storage.Store, defs Definitions, archive Archive, log *slog.Logger) *Store {
	return &Store{
		store:   store,
		defs:    defs,
		archive: archive,
		log:     log,
		now:     time.Now,
	}
}

// Initialize loads the persisted record. An absent, unreadable, or stale
// record (date != today) is replaced by a fresh empty record for today,
// which is persisted immediately.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := models.Day(s.now())

	var rec models.DailyRecord
	found, err := s.store.Load(ctx, storage.KeyTodayRecord, &rec)
	if err != nil {
		return err
	}
	if found && rec.Date == today {
		if rec.Exercises == nil {
			rec.Exercises = []models.DailyExerciseEntry{}
		}
		s.rec = rec
		return nil
	}

	if found {
		s.log.Info("day rolled over, resetting daily record", "stale", rec.Date, "today", today)
	}
	s.rec = models.NewDailyRecord(today)
	s.persist(ctx)
	return nil
}

// Today returns a copy of the current record, rolling the day over first if
// the stored date is stale.
func (s *Store) Today(ctx context.Context) models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	return s.rec.Clone()
}

// ToggleExercise flips the completion flag for the matching entry. No-op if
// the exercise is not part of today.
func (s *Store) ToggleExercise(ctx context.Context, exerciseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	for i := range s.rec.Exercises {
		if s.rec.Exercises[i].ID == exerciseID {
			s.rec.Exercises[i].Completed = !s.rec.Exercises[i].Completed
			s.persist(ctx)
			return
		}
	}
}

// SetActualReps records the reps actually performed. Negative values are
// rejected; unknown exercises are a no-op. Returns false only on rejection.
func (s *Store) SetActualReps(ctx context.Context, exerciseID string, reps int) bool {
	if reps < 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	for i := range s.rec.Exercises {
		if s.rec.Exercises[i].ID == exerciseID {
			r := reps
			s.rec.Exercises[i].ActualReps = &r
			s.persist(ctx)
			return true
		}
	}
	return true
}

// AddExercise appends a catalog exercise to today with completed=false.
// Unknown ids and duplicates are silent no-ops, so the day's list never
// contains two entries with the same id.
func (s *Store) AddExercise(ctx context.Context, exerciseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	def, ok := s.defs.Get(exerciseID)
	if !ok {
		return
	}
	for _, e := range s.rec.Exercises {
		if e.ID == exerciseID {
			return
		}
	}
	s.rec.Exercises = append(s.rec.Exercises, models.DailyExerciseEntry{ExerciseDefinition: def})
	s.persist(ctx)
}

// RemoveExercise drops the entry from today. No-op if absent.
func (s *Store) RemoveExercise(ctx context.Context, exerciseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	for i, e := range s.rec.Exercises {
		if e.ID == exerciseID {
			s.rec.Exercises = append(s.rec.Exercises[:i], s.rec.Exercises[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// SetPainLevel records today's pain rating. Values outside 0-10 are rejected
// with no mutation.
func (s *Store) SetPainLevel(ctx context.Context, level int) bool {
	if level < 0 || level > 10 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	s.rec.PainLevel = &level
	s.persist(ctx)
	return true
}

// SetPainNotes replaces the free-text notes verbatim.
func (s *Store) SetPainNotes(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	s.rec.PainNotes = text
	s.persist(ctx)
}

// AddWater increments the water count by one glass.
func (s *Store) AddWater(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	s.rec.WaterIntake++
	s.persist(ctx)
}

// RemoveWater decrements the water count, never below zero.
func (s *Store) RemoveWater(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	if s.rec.WaterIntake > 0 {
		s.rec.WaterIntake--
	}
	s.persist(ctx)
}

// FinalizeDay hands a snapshot of the current record to the archive and
// reports whether the append was persisted. The live record is left intact,
// so a day can be finalized more than once.
func (s *Store) FinalizeDay(ctx context.Context) bool {
	s.mu.Lock()
	s.ensureCurrent(ctx)
	snapshot := s.rec.Clone()
	s.mu.Unlock()
	return s.archive.Append(ctx, snapshot)
}

// ApplyDefinition refreshes the snapshot fields of a matching entry so
// today's view reflects a catalog edit. Satisfies catalog.TodaySink.
func (s *Store) ApplyDefinition(ctx context.Context, def models.ExerciseDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCurrent(ctx)
	for i := range s.rec.Exercises {
		if s.rec.Exercises[i].ID == def.ID {
			s.rec.Exercises[i].ExerciseDefinition = def
			s.persist(ctx)
			return
		}
	}
}

// ensureCurrent forces the stale-to-current transition: if the record's date
// no longer matches today, it is replaced with a fresh empty record. The
// stale day's unsaved data is discarded; archiving is the caller's job via
// FinalizeDay before rollover. Callers hold mu.
func (s *Store) ensureCurrent(ctx context.Context) {
	today := models.Day(s.now())
	if s.rec.Date == today {
		return
	}
	if s.rec.Date != "" {
		s.log.Info("day rolled over, resetting daily record", "stale", s.rec.Date, "today", today)
	}
	s.rec = models.NewDailyRecord(today)
	s.persist(ctx)
}

// persist writes the full record through to the store. Failures are logged;
// the in-memory record remains the source of truth for the session.
func (s *Store) persist(ctx context.Context) {
	if err := s.store.Save(ctx, storage.KeyTodayRecord, s.rec); err != nil {
		s.log.Warn("persisting daily record failed", "error", err)
	}
}

// Package history owns the append-only archives: finalized daily records,
// the pain-note log, and the user's injury-area set.
package history

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/storage"
)

// Ledger reads and appends the archived sequences. It keeps no state of its
// own: every call is a load (and possibly persist) against the gateway, so
// the persisted data is always the ledger. mu serializes the
// load-append-persist sequences so concurrent appends never lose entries.
type Ledger struct {
	store *storage.Store
	log   *slog.Logger
	now   func() time.Time
	newID func() string
	mu    sync.Mutex
}

// New creates a Ledger over the given store.
func New(store *storage.Store, log *slog.Logger) *Ledger {
	return &Ledger{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append archives a snapshot of a daily record, deriving the completion
// counts at this moment. Returns whether the updated ledger was persisted.
// Ordering is strictly append order; the same date may appear more than once
// when a day is finalized repeatedly.
func (l *Ledger) Append(ctx context.Context, rec models.DailyRecord) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.History(ctx)
	entries = append(entries, models.HistoryEntry{
		DailyRecord:        rec,
		Timestamp:          l.now(),
		CompletedExercises: rec.CompletedCount(),
		TotalExercises:     len(rec.Exercises),
	})
	if err := l.store.Save(ctx, storage.KeyHistoryLedger, entries); err != nil {
		l.log.Warn("persisting history ledger failed", "error", err)
		return false
	}
	return true
}

// History returns the full archive, oldest first. Absent or unreadable data
// reads as an empty ledger.
func (l *Ledger) History(ctx context.Context) []models.HistoryEntry {
	var entries []models.HistoryEntry
	if _, err := l.store.Load(ctx, storage.KeyHistoryLedger, &entries); err != nil {
		l.log.Warn("loading history ledger failed", "error", err)
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries
}

// Recent returns the last n history entries, newest first.
func (l *Ledger) Recent(ctx context.Context, n int) []models.HistoryEntry {
	entries := l.History(ctx)
	return lastReversed(entries, n)
}

// AddPainNote appends a note tagged with an injury area. Both fields are
// trimmed before storing; rejected (no mutation) when either trims to empty.
func (l *Ledger) AddPainNote(ctx context.Context, injuryArea, note string) bool {
	note = strings.TrimSpace(note)
	injuryArea = strings.TrimSpace(injuryArea)
	if note == "" || injuryArea == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	notes := l.PainNotes(ctx)
	now := l.now()
	notes = append(notes, models.PainNote{
		ID:         l.newID(),
		Date:       models.Day(now),
		InjuryArea: injuryArea,
		Note:       note,
		Timestamp:  now,
	})
	if err := l.store.Save(ctx, storage.KeyPainNotes, notes); err != nil {
		l.log.Warn("persisting pain notes failed", "error", err)
		return false
	}
	return true
}

// PainNotes returns the full note log, oldest first.
func (l *Ledger) PainNotes(ctx context.Context) []models.PainNote {
	var notes []models.PainNote
	if _, err := l.store.Load(ctx, storage.KeyPainNotes, &notes); err != nil {
		l.log.Warn("loading pain notes failed", "error", err)
	}
	if notes == nil {
		notes = []models.PainNote{}
	}
	return notes
}

// RecentPainNotes returns the last n notes, newest first.
func (l *Ledger) RecentPainNotes(ctx context.Context, n int) []models.PainNote {
	return lastReversed(l.PainNotes(ctx), n)
}

func lastReversed[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}

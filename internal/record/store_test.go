package record

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/meltforce/recoverytrack/internal/catalog"
	"github.com/meltforce/recoverytrack/internal/history"
	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/storage"
)

type fixture struct {
	store  *storage.Store
	cat    *catalog.Catalog
	ledger *history.Ledger
	rec    *Store
	log    *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.Open(t.TempDir(), log)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	cat := catalog.New(store, log)
	led := history.New(store, log)
	rec := New(store, cat, led, log)
	cat.AttachToday(rec)

	if err := cat.Initialize(ctx); err != nil {
		t.Fatalf("catalog initialize: %v", err)
	}
	if err := rec.Initialize(ctx); err != nil {
		t.Fatalf("record initialize: %v", err)
	}
	return &fixture{store: store, cat: cat, ledger: led, rec: rec, log: log}
}

// TestAddExerciseUniqueness verifies the day's list never holds two entries
// with the same id, and unknown ids are silent no-ops.
func TestAddExerciseUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "clamshells")
	f.rec.AddExercise(ctx, "clamshells")
	f.rec.AddExercise(ctx, "glute-bridges")
	f.rec.AddExercise(ctx, "not-in-catalog")

	today := f.rec.Today(ctx)
	if len(today.Exercises) != 2 {
		t.Fatalf("exercise count = %d, want 2", len(today.Exercises))
	}

	seen := map[string]bool{}
	for _, e := range today.Exercises {
		if seen[e.ID] {
			t.Errorf("duplicate exercise id %q", e.ID)
		}
		seen[e.ID] = true
	}

	f.rec.RemoveExercise(ctx, "clamshells")
	f.rec.RemoveExercise(ctx, "clamshells")
	if got := len(f.rec.Today(ctx).Exercises); got != 1 {
		t.Errorf("exercise count after removal = %d, want 1", got)
	}
}

// TestToggleExercise verifies completion flips and unknown ids are no-ops.
func TestToggleExercise(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "heel-slides")
	f.rec.ToggleExercise(ctx, "heel-slides")
	if !f.rec.Today(ctx).Exercises[0].Completed {
		t.Error("completed = false after toggle, want true")
	}
	f.rec.ToggleExercise(ctx, "heel-slides")
	if f.rec.Today(ctx).Exercises[0].Completed {
		t.Error("completed = true after second toggle, want false")
	}

	f.rec.ToggleExercise(ctx, "missing")
}

// TestSetActualReps verifies reps are stored and negatives rejected.
func TestSetActualReps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "heel-slides")
	if !f.rec.SetActualReps(ctx, "heel-slides", 12) {
		t.Fatal("SetActualReps rejected a valid value")
	}
	got := f.rec.Today(ctx).Exercises[0].ActualReps
	if got == nil || *got != 12 {
		t.Errorf("actualReps = %v, want 12", got)
	}

	if f.rec.SetActualReps(ctx, "heel-slides", -3) {
		t.Error("SetActualReps accepted a negative value")
	}
	got = f.rec.Today(ctx).Exercises[0].ActualReps
	if got == nil || *got != 12 {
		t.Errorf("actualReps after rejection = %v, want 12", got)
	}
}

// TestSetPainLevel verifies the 0-10 bound is enforced at the store boundary.
func TestSetPainLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, level := range []int{0, 5, 10} {
		if !f.rec.SetPainLevel(ctx, level) {
			t.Errorf("SetPainLevel(%d) rejected, want accepted", level)
		}
	}
	for _, level := range []int{-1, 11, 100} {
		if f.rec.SetPainLevel(ctx, level) {
			t.Errorf("SetPainLevel(%d) accepted, want rejected", level)
		}
	}

	got := f.rec.Today(ctx).PainLevel
	if got == nil || *got != 10 {
		t.Errorf("painLevel = %v, want 10", got)
	}
}

// TestWaterFloor verifies RemoveWater never takes the count below zero.
func TestWaterFloor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.RemoveWater(ctx)
	if got := f.rec.Today(ctx).WaterIntake; got != 0 {
		t.Errorf("waterIntake = %d after removing at zero, want 0", got)
	}

	f.rec.AddWater(ctx)
	f.rec.AddWater(ctx)
	f.rec.RemoveWater(ctx)
	if got := f.rec.Today(ctx).WaterIntake; got != 1 {
		t.Errorf("waterIntake = %d, want 1", got)
	}
}

// TestPersistRoundTrip verifies a second store over the same gateway loads
// an identical record on the same day.
func TestPersistRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "clamshells")
	f.rec.ToggleExercise(ctx, "clamshells")
	f.rec.SetPainLevel(ctx, 4)
	f.rec.SetPainNotes(ctx, "dull ache after practice")
	f.rec.AddWater(ctx)
	want := f.rec.Today(ctx)

	reloaded := New(f.store, f.cat, f.ledger, f.log)
	if err := reloaded.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	got := reloaded.Today(ctx)

	if got.Date != want.Date || got.PainNotes != want.PainNotes || got.WaterIntake != want.WaterIntake {
		t.Errorf("reloaded record = %+v, want %+v", got, want)
	}
	if got.PainLevel == nil || *got.PainLevel != 4 {
		t.Errorf("reloaded painLevel = %v, want 4", got.PainLevel)
	}
	if len(got.Exercises) != 1 || !got.Exercises[0].Completed {
		t.Errorf("reloaded exercises = %+v", got.Exercises)
	}
}

// TestDayRollover verifies a record dated yesterday resets to a fresh record
// for today on the next operation.
func TestDayRollover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	f.rec.now = func() time.Time { return yesterday }
	if err := f.rec.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	f.rec.AddExercise(ctx, "clamshells")
	f.rec.SetPainLevel(ctx, 7)
	f.rec.SetPainNotes(ctx, "stale notes")
	f.rec.AddWater(ctx)

	// Midnight passes.
	f.rec.now = time.Now

	today := f.rec.Today(ctx)
	if today.Date != models.Day(time.Now()) {
		t.Errorf("date = %q, want today", today.Date)
	}
	if len(today.Exercises) != 0 {
		t.Errorf("exercises = %v, want empty", today.Exercises)
	}
	if today.PainLevel != nil {
		t.Errorf("painLevel = %v, want absent", today.PainLevel)
	}
	if today.PainNotes != "" {
		t.Errorf("painNotes = %q, want empty", today.PainNotes)
	}
	if today.WaterIntake != 0 {
		t.Errorf("waterIntake = %d, want 0", today.WaterIntake)
	}
}

// TestFinalizeDay verifies the archived entry carries derived counts and the
// live record stays intact.
func TestFinalizeDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "clamshells")
	f.rec.AddExercise(ctx, "glute-bridges")
	f.rec.AddExercise(ctx, "heel-slides")
	f.rec.ToggleExercise(ctx, "clamshells")
	f.rec.ToggleExercise(ctx, "heel-slides")

	if !f.rec.FinalizeDay(ctx) {
		t.Fatal("FinalizeDay returned false")
	}

	entries := f.ledger.History(ctx)
	if len(entries) != 1 {
		t.Fatalf("history length = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.CompletedExercises != 2 {
		t.Errorf("completedExercises = %d, want 2", e.CompletedExercises)
	}
	if e.TotalExercises != 3 {
		t.Errorf("totalExercises = %d, want 3", e.TotalExercises)
	}

	// Finalizing again appends a second snapshot for the same date.
	if !f.rec.FinalizeDay(ctx) {
		t.Fatal("second FinalizeDay returned false")
	}
	if got := len(f.ledger.History(ctx)); got != 2 {
		t.Errorf("history length after second finalize = %d, want 2", got)
	}
	if got := len(f.rec.Today(ctx).Exercises); got != 3 {
		t.Errorf("live record exercises = %d after finalize, want 3", got)
	}
}

// TestConcurrentMutations verifies simultaneous requests serialize through
// the store: no water increments are lost and the exercise list stays
// duplicate-free. Run with -race.
func TestConcurrentMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				f.rec.AddWater(ctx)
				f.rec.AddExercise(ctx, "clamshells")
				f.rec.Today(ctx)
			}
		}()
	}
	wg.Wait()

	today := f.rec.Today(ctx)
	if today.WaterIntake != 100 {
		t.Errorf("waterIntake = %d, want 100", today.WaterIntake)
	}
	if len(today.Exercises) != 1 {
		t.Errorf("exercise count = %d, want 1", len(today.Exercises))
	}
}

// TestConcurrentUpdateAndAdd drives catalog edits against record mutations to
// exercise the catalog-to-record propagation path under contention.
func TestConcurrentUpdateAndAdd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "clamshells")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		name := "Weighted Clamshells"
		for i := 0; i < 25; i++ {
			f.cat.Update(ctx, "clamshells", catalog.FieldPatch{Name: &name})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			f.rec.AddExercise(ctx, "glute-bridges")
			f.rec.RemoveExercise(ctx, "glute-bridges")
		}
	}()
	wg.Wait()

	if got := f.rec.Today(ctx).Exercises[0].Name; got != "Weighted Clamshells" {
		t.Errorf("today's entry name = %q, want propagated edit", got)
	}
}

// TestApplyDefinition verifies a catalog edit reaches today's snapshot but
// leaves archived history untouched.
func TestApplyDefinition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.AddExercise(ctx, "clamshells")
	if !f.rec.FinalizeDay(ctx) {
		t.Fatal("FinalizeDay returned false")
	}

	name := "Weighted Clamshells"
	f.cat.Update(ctx, "clamshells", catalog.FieldPatch{Name: &name})

	if got := f.rec.Today(ctx).Exercises[0].Name; got != "Weighted Clamshells" {
		t.Errorf("today's entry name = %q, want propagated edit", got)
	}
	if got := f.ledger.History(ctx)[0].Exercises[0].Name; got != "Clamshells" {
		t.Errorf("archived entry name = %q, want original snapshot", got)
	}
}

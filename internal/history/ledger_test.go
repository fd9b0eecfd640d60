package history

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/storage"
)

func testLedger(t *testing.T) *Ledger {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.Open(t.TempDir(), log)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, log)
}

func dayRecord(date string, water int) models.DailyRecord {
	rec := models.NewDailyRecord(date)
	rec.WaterIntake = water
	return rec
}

// TestAppendOrder verifies the ledger keeps strict append order, even when
// dates arrive out of calendar order.
func TestAppendOrder(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	dates := []string{"2026-08-27", "2026-08-25", "2026-08-26"}
	for _, d := range dates {
		if !l.Append(ctx, dayRecord(d, 1)) {
			t.Fatalf("append %s failed", d)
		}
	}

	entries := l.History(ctx)
	if len(entries) != 3 {
		t.Fatalf("history length = %d, want 3", len(entries))
	}
	for i, want := range dates {
		if entries[i].Date != want {
			t.Errorf("entries[%d].Date = %q, want %q", i, entries[i].Date, want)
		}
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("entry timestamp not set")
	}
}

// TestHistoryEmpty verifies an untouched ledger reads as an empty list.
func TestHistoryEmpty(t *testing.T) {
	l := testLedger(t)
	if got := l.History(context.Background()); len(got) != 0 {
		t.Errorf("history = %v, want empty", got)
	}
}

// TestRecent verifies newest-first windows.
func TestRecent(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	for _, d := range []string{"2026-08-24", "2026-08-25", "2026-08-26"} {
		l.Append(ctx, dayRecord(d, 0))
	}

	recent := l.Recent(ctx, 2)
	if len(recent) != 2 {
		t.Fatalf("recent length = %d, want 2", len(recent))
	}
	if recent[0].Date != "2026-08-26" || recent[1].Date != "2026-08-25" {
		t.Errorf("recent order = %q, %q; want newest first", recent[0].Date, recent[1].Date)
	}

	if got := l.Recent(ctx, 10); len(got) != 3 {
		t.Errorf("oversized window length = %d, want 3", len(got))
	}
}

// TestAddPainNote verifies validation and the assigned id/date/timestamp.
func TestAddPainNote(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	tests := []struct {
		name string
		area string
		note string
		want bool
	}{
		{"valid", "Hip Labrum", "sharp twinge on external rotation", true},
		{"empty area", "", "some text", false},
		{"whitespace note", "Hip Labrum", "  ", false},
		{"empty note", "Hip Labrum", "", false},
		{"padded area", "  Rotator Cuff  ", "ache after conditioning", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.AddPainNote(ctx, tt.area, tt.note); got != tt.want {
				t.Errorf("AddPainNote(%q, %q) = %v, want %v", tt.area, tt.note, got, tt.want)
			}
		})
	}

	notes := l.PainNotes(ctx)
	if len(notes) != 2 {
		t.Fatalf("note log length = %d, want 2", len(notes))
	}
	n := notes[0]
	if n.ID == "" {
		t.Error("note id not assigned")
	}
	if n.Date != models.Day(time.Now()) {
		t.Errorf("note date = %q, want today", n.Date)
	}
	if n.Note != "sharp twinge on external rotation" {
		t.Errorf("note text = %q, want trimmed original", n.Note)
	}
	// The stored tag is the trimmed area, so padded and exact spellings land
	// under one tag.
	if notes[1].InjuryArea != "Rotator Cuff" {
		t.Errorf("injury area = %q, want %q", notes[1].InjuryArea, "Rotator Cuff")
	}
}

// TestConcurrentAppend verifies simultaneous appends serialize through the
// ledger's load-append-persist sequence with no lost entries. Run with -race.
func TestConcurrentAppend(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Append(ctx, dayRecord("2026-08-27", 1))
			}
		}()
	}
	wg.Wait()

	if got := len(l.History(ctx)); got != 40 {
		t.Errorf("history length = %d, want 40", got)
	}
}

// TestAreaSetSemantics verifies the injury-area set rejects blanks and exact
// duplicates, and removal is a safe no-op for unknown names.
func TestAreaSetSemantics(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	if !l.AddArea(ctx, "Hip Labrum") {
		t.Fatal("AddArea rejected a new area")
	}
	if l.AddArea(ctx, "Hip Labrum") {
		t.Error("AddArea accepted a duplicate")
	}
	if l.AddArea(ctx, "   ") {
		t.Error("AddArea accepted a blank name")
	}
	// Case-sensitive matching: different case is a different area.
	if !l.AddArea(ctx, "hip labrum") {
		t.Error("AddArea rejected a differently-cased name")
	}

	areas := l.Areas(ctx)
	if len(areas) != 2 {
		t.Fatalf("areas = %v, want 2 entries", areas)
	}

	l.RemoveArea(ctx, "hip labrum")
	l.RemoveArea(ctx, "never added")
	areas = l.Areas(ctx)
	if len(areas) != 1 || areas[0] != "Hip Labrum" {
		t.Errorf("areas after removal = %v, want [Hip Labrum]", areas)
	}
}

// TestSuggestedAreas sanity-checks the suggestion catalog is present.
func TestSuggestedAreas(t *testing.T) {
	if len(SuggestedAreas) != 18 {
		t.Errorf("suggested areas = %d, want 18", len(SuggestedAreas))
	}
}

package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(t.TempDir(), log)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestSaveLoadRoundTrip verifies a value survives save/load field-for-field.
func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	in := payload{Name: "glasses", Count: 7}
	if err := s.Save(ctx, "test_key", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out payload
	found, err := s.Load(ctx, "test_key", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

// TestLoadAbsentKey verifies a missing key reads as not found, not an error.
func TestLoadAbsentKey(t *testing.T) {
	s := testStore(t)

	var out map[string]any
	found, err := s.Load(context.Background(), "never_written", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("found = true for absent key, want false")
	}
}

// TestSaveOverwrites verifies a second save replaces the first value.
func TestSaveOverwrites(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "k", []int{1, 2, 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, "k", []int{9}); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []int
	if _, err := s.Load(ctx, "k", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != 9 {
		t.Errorf("value = %v, want [9]", out)
	}
}

// TestLoadMalformedValue verifies corrupt stored JSON is treated as absent
// instead of failing the caller.
func TestLoadMalformedValue(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value) VALUES (?, ?)`, "bad_key", "{not json")
	if err != nil {
		t.Fatalf("inserting corrupt value: %v", err)
	}

	var out map[string]any
	found, err := s.Load(ctx, "bad_key", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("found = true for malformed value, want false")
	}
}

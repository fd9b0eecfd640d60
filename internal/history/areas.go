package history

import (
	"context"
	"strings"

	"github.com/meltforce/recoverytrack/internal/storage"
)

// SuggestedAreas is the read-only suggestion catalog shown next to the
// user's own set. Common aerial-training injury sites.
var SuggestedAreas = []string{
	"Hip Labrum",
	"Knee Meniscus",
	"Tennis Elbow (Lateral Epicondylitis)",
	"Golfer's Elbow (Medial Epicondylitis)",
	"Shoulder Impingement",
	"Rotator Cuff",
	"Wrist Strain",
	"Lower Back",
	"Hip Flexors",
	"Ankle Sprain",
	"Neck Strain",
	"Forearm Tendonitis",
	"Rib Subluxation",
	"Thoracic Spine",
	"IT Band Syndrome",
	"Achilles Tendonitis",
	"Bicep Tendonitis",
	"Tricep Strain",
}

// Areas returns the user's tracked injury areas in insertion order.
func (l *Ledger) Areas(ctx context.Context) []string {
	var areas []string
	if _, err := l.store.Load(ctx, storage.KeyInjuryAreas, &areas); err != nil {
		l.log.Warn("loading injury areas failed", "error", err)
	}
	if areas == nil {
		areas = []string{}
	}
	return areas
}

// AddArea adds an area to the tracked set. Rejected when the trimmed name is
// empty or already present (case-sensitive exact match).
func (l *Ledger) AddArea(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	areas := l.Areas(ctx)
	for _, a := range areas {
		if a == name {
			return false
		}
	}
	areas = append(areas, name)
	if err := l.store.Save(ctx, storage.KeyInjuryAreas, areas); err != nil {
		l.log.Warn("persisting injury areas failed", "error", err)
		return false
	}
	return true
}

// RemoveArea drops an area from the tracked set. No-op if absent.
func (l *Ledger) RemoveArea(ctx context.Context, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	areas := l.Areas(ctx)
	for i, a := range areas {
		if a == name {
			areas = append(areas[:i], areas[i+1:]...)
			if err := l.store.Save(ctx, storage.KeyInjuryAreas, areas); err != nil {
				l.log.Warn("persisting injury areas failed", "error", err)
			}
			return
		}
	}
}

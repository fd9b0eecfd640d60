// Package catalog owns the set of exercise definitions: the built-in seed
// library plus user-authored custom entries.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/storage"
)

// TodaySink receives definition edits so entries already added to the live
// day reflect them. Archived history copies are never touched.
type TodaySink interface {
	ApplyDefinition(ctx context.Context, def models.ExerciseDefinition)
}

// Catalog holds the durable exercise library. It is the single owner of
// definition identity and content. Safe for concurrent use.
type Catalog struct {
	store *storage.Store
	log   *slog.Logger
	today TodaySink

	mu   sync.RWMutex // guards defs
	defs []models.ExerciseDefinition
}

// New creates a Catalog over the given store. Call Initialize before use.
func New(store *storage.Store, log *slog.Logger) *Catalog {
	return &Catalog{store: store, log: log}
}

// AttachToday wires the live-day store that definition edits propagate into.
func (c *Catalog) AttachToday(sink TodaySink) {
	c.today = sink
}

// Initialize loads the persisted catalog. On first run (or an unreadable
// catalog) it seeds the built-in library and persists the seed so every later
// run observes the same durable set.
func (c *Catalog) Initialize(ctx context.Context) error {
	var defs []models.ExerciseDefinition
	found, err := c.store.Load(ctx, storage.KeyExerciseCatalog, &defs)
	if err != nil {
		return err
	}
	if !found || len(defs) == 0 {
		defs = seedExercises()
		if err := c.store.Save(ctx, storage.KeyExerciseCatalog, defs); err != nil {
			return err
		}
		c.log.Info("exercise catalog seeded", "count", len(defs))
	}
	c.mu.Lock()
	c.defs = defs
	c.mu.Unlock()
	return nil
}

// List returns a copy of every definition in catalog order.
func (c *Catalog) List() []models.ExerciseDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ExerciseDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Get returns the definition with the given id.
func (c *Catalog) Get(id string) (models.ExerciseDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.defs {
		if d.ID == id {
			return d, true
		}
	}
	return models.ExerciseDefinition{}, false
}

// AddCustom appends a user-authored definition. All fields are trimmed; a
// name that is empty after trimming is rejected. The updated catalog is
// persisted before returning.
func (c *Catalog) AddCustom(ctx context.Context, name, description, targetArea, repRange string) (models.ExerciseDefinition, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ExerciseDefinition{}, false
	}

	def := models.ExerciseDefinition{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		TargetArea:  strings.TrimSpace(targetArea),
		RepRange:    strings.TrimSpace(repRange),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs = append(c.defs, def)
	if err := c.store.Save(ctx, storage.KeyExerciseCatalog, c.defs); err != nil {
		c.log.Warn("persisting catalog failed", "error", err)
	}
	return def, true
}

// FieldPatch selects which definition fields an Update touches.
type FieldPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TargetArea  *string `json:"targetArea,omitempty"`
	RepRange    *string `json:"repRange,omitempty"`
}

// Update edits a definition in place and pushes the result into the live day.
// Unknown ids are a no-op; returns whether the id was found.
func (c *Catalog) Update(ctx context.Context, id string, patch FieldPatch) bool {
	updated, found := c.applyPatch(ctx, id, patch)
	if !found {
		return false
	}
	// Sink call happens outside mu: the record store takes its own lock and
	// calls back into Get.
	if c.today != nil {
		c.today.ApplyDefinition(ctx, updated)
	}
	return true
}

func (c *Catalog) applyPatch(ctx context.Context, id string, patch FieldPatch) (models.ExerciseDefinition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.defs {
		if c.defs[i].ID != id {
			continue
		}
		if patch.Name != nil {
			c.defs[i].Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			c.defs[i].Description = strings.TrimSpace(*patch.Description)
		}
		if patch.TargetArea != nil {
			c.defs[i].TargetArea = strings.TrimSpace(*patch.TargetArea)
		}
		if patch.RepRange != nil {
			c.defs[i].RepRange = strings.TrimSpace(*patch.RepRange)
		}

		if err := c.store.Save(ctx, storage.KeyExerciseCatalog, c.defs); err != nil {
			c.log.Warn("persisting catalog failed", "error", err)
		}
		return c.defs[i], true
	}
	return models.ExerciseDefinition{}, false
}

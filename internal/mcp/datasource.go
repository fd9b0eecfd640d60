package mcp

import (
	"context"

	"github.com/meltforce/recoverytrack/internal/history"
	"github.com/meltforce/recoverytrack/internal/models"
	"github.com/meltforce/recoverytrack/internal/record"
)

// DataSource abstracts the core stores for MCP tools, so the tools don't care
// whether they run in-process or against a remote deployment.
type DataSource interface {
	Today(ctx context.Context) models.DailyRecord
	History(ctx context.Context) []models.HistoryEntry
	PainNotes(ctx context.Context) []models.PainNote
	AddWater(ctx context.Context)
	RemoveWater(ctx context.Context)
	SetPainLevel(ctx context.Context, level int) bool
	AddPainNote(ctx context.Context, injuryArea, note string) bool
}

// Core bundles the live record store and the ledger into a DataSource.
type Core struct {
	Record *record.Store
	Ledger *history.Ledger
}

// Compile-time check: *Core satisfies DataSource.
var _ DataSource = (*Core)(nil)

func (c *Core) Today(ctx context.Context) models.DailyRecord {
	return c.Record.Today(ctx)
}

func (c *Core) History(ctx context.Context) []models.HistoryEntry {
	return c.Ledger.History(ctx)
}

func (c *Core) PainNotes(ctx context.Context) []models.PainNote {
	return c.Ledger.PainNotes(ctx)
}

func (c *Core) AddWater(ctx context.Context) {
	c.Record.AddWater(ctx)
}

func (c *Core) RemoveWater(ctx context.Context) {
	c.Record.RemoveWater(ctx)
}

func (c *Core) SetPainLevel(ctx context.Context, level int) bool {
	return c.Record.SetPainLevel(ctx, level)
}

func (c *Core) AddPainNote(ctx context.Context, injuryArea, note string) bool {
	return c.Ledger.AddPainNote(ctx, injuryArea, note)
}

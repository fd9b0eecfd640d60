package mcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/recoverytrack/internal/trends"
)

// jsonResource wraps v as a single JSON resource content.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// intArg parses an optional numeric string argument, falling back to def.
func intArg(req mcp.CallToolRequest, key string, def int) int {
	if v := req.GetString(key, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// --- Tool definitions ---

var toolGetToday = mcp.NewTool("get_today",
	mcp.WithDescription("Get the live daily record: today's exercises with completion state, pain level and notes, and water intake."),
)

var toolGetTrend = mcp.NewTool("get_trend",
	mcp.WithDescription("Get a metric's full series plus summary statistics (average, min, max, trend direction) derived from the archived history."),
	mcp.WithString("metric", mcp.Required(), mcp.Description("Metric name"), mcp.Enum("pain", "water", "exercise")),
	mcp.WithString("window", mcp.Description("Number of most recent points to include as the recent window. Defaults to 14.")),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Get archived daily records, newest first. Each entry includes completed/total exercise counts, pain level, and water intake."),
	mcp.WithString("limit", mcp.Description("Maximum entries to return. Defaults to 5.")),
)

var toolGetPainNotes = mcp.NewTool("get_pain_notes",
	mcp.WithDescription("Get logged pain notes tagged by injury area, newest first."),
	mcp.WithString("limit", mcp.Description("Maximum notes to return. Defaults to 10.")),
)

var toolLogWater = mcp.NewTool("log_water",
	mcp.WithDescription("Adjust today's water intake by one glass. The count never goes below zero."),
	mcp.WithString("action", mcp.Description("Either 'add' or 'remove'. Defaults to 'add'."), mcp.Enum("add", "remove")),
)

var toolLogPain = mcp.NewTool("log_pain",
	mcp.WithDescription("Record today's pain rating on the 0-10 scale."),
	mcp.WithString("level", mcp.Required(), mcp.Description("Pain level, an integer from 0 (no pain) to 10 (severe)")),
)

var toolAddPainNote = mcp.NewTool("add_pain_note",
	mcp.WithDescription("Append a pain note for an injury area to the permanent note log."),
	mcp.WithString("injury_area", mcp.Required(), mcp.Description("Body region or condition tag, e.g. 'Hip Labrum'")),
	mcp.WithString("note", mcp.Required(), mcp.Description("Free-text observation about the pain")),
)

// --- Tool handlers ---

func (h *handlers) getToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.ds.Today(ctx))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("metric")
	if err != nil {
		return mcp.NewToolResultError("metric parameter is required"), nil
	}
	metric, ok := trends.MetricByName(name)
	if !ok {
		return mcp.NewToolResultError("unknown metric: " + name), nil
	}

	series := trends.ExtractSeries(h.ds.History(ctx), metric)
	window := intArg(req, "window", trends.DefaultChartWindow)

	payload := map[string]any{
		"metric":  metric.Name,
		"series":  series,
		"recent":  trends.RecentWindow(series, window),
		"summary": trends.Summarize(series, metric),
	}
	if latest, ok := trends.Latest(series); ok {
		payload["latest"] = latest
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req, "limit", trends.RecentEntriesWindow)

	entries := h.ds.History(ctx)
	out := make([]any, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPainNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req, "limit", trends.PainNoteHistoryWindow)

	notes := h.ds.PainNotes(ctx)
	out := make([]any, 0, limit)
	for i := len(notes) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, notes[i])
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logWater(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch action := req.GetString("action", "add"); action {
	case "add":
		h.ds.AddWater(ctx)
	case "remove":
		h.ds.RemoveWater(ctx)
	default:
		return mcp.NewToolResultError("action must be 'add' or 'remove'"), nil
	}

	result, err := mcp.NewToolResultJSON(h.ds.Today(ctx))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logPain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	levelStr, err := req.RequireString("level")
	if err != nil {
		return mcp.NewToolResultError("level parameter is required"), nil
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return mcp.NewToolResultError("level must be an integer"), nil
	}
	if !h.ds.SetPainLevel(ctx, level) {
		return mcp.NewToolResultError("level must be between 0 and 10"), nil
	}

	result, err := mcp.NewToolResultJSON(h.ds.Today(ctx))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addPainNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	area, err := req.RequireString("injury_area")
	if err != nil {
		return mcp.NewToolResultError("injury_area parameter is required"), nil
	}
	note, err := req.RequireString("note")
	if err != nil {
		return mcp.NewToolResultError("note parameter is required"), nil
	}

	if !h.ds.AddPainNote(ctx, area, note) {
		return mcp.NewToolResultError("injury area and note text must not be empty"), nil
	}
	return mcp.NewToolResultText("pain note saved"), nil
}

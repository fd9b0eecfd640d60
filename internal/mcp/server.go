package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/recoverytrack/internal/report"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RecoveryTrack", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RecoveryTrack personal recovery tracker. Read today's record, history, pain notes, and metric trends, or log water intake and pain ratings for the current day."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetToday, Handler: h.getToday},
		server.ServerTool{Tool: toolGetTrend, Handler: h.getTrend},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolGetPainNotes, Handler: h.getPainNotes},
		server.ServerTool{Tool: toolLogWater, Handler: h.logWater},
		server.ServerTool{Tool: toolLogPain, Handler: h.logPain},
		server.ServerTool{Tool: toolAddPainNote, Handler: h.addPainNote},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resReport, Handler: h.report},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resReport = mcp.NewResource(
	"recoverytrack://report",
	"Recovery Report",
	mcp.WithResourceDescription("Full recovery export: tracked-day totals, pain/water averages, every archived day, and all pain notes"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) report(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rep := report.Build(h.ds.History(ctx), h.ds.PainNotes(ctx), time.Now())
	return jsonResource(req.Params.URI, rep)
}

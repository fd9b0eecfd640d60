// recoverytrack-mcp exposes the recovery tracker to MCP clients over stdio.
// It opens the same local store as the main server, so it must point at the
// same storage directory.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/recoverytrack/internal/catalog"
	"github.com/meltforce/recoverytrack/internal/config"
	"github.com/meltforce/recoverytrack/internal/history"
	"github.com/meltforce/recoverytrack/internal/mcp"
	"github.com/meltforce/recoverytrack/internal/record"
	"github.com/meltforce/recoverytrack/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Dir, log)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	cat := catalog.New(store, log)
	led := history.New(store, log)
	rec := record.New(store, cat, led, log)
	cat.AttachToday(rec)

	if err := cat.Initialize(ctx); err != nil {
		log.Error("catalog initialization failed", "error", err)
		os.Exit(1)
	}
	if err := rec.Initialize(ctx); err != nil {
		log.Error("daily record initialization failed", "error", err)
		os.Exit(1)
	}

	srv := mcp.New(&mcp.Core{Record: rec, Ledger: led}, Version, log)

	log.Info("RecoveryTrack MCP server starting", "version", Version, "transport", "stdio")
	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

// mcp-agents serves the agent catalog as MCP tools over stdio so local MCP
// clients can look up and dispatch agents. It loads the catalog once at
// startup; the file is the generator's output (agentctl generate).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcptransport "github.com/alanyang/agent-catalog/internal/transport/mcp"
	"github.com/alanyang/agent-catalog/internal/wire"
)

func main() {
	configPath := flag.String("config", "agentctl.yaml", "path to config file")
	catalogPath := flag.String("catalog", "", "catalog file (overrides config)")
	flag.Parse()

	app, err := wire.Build(*configPath, *catalogPath)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	// stdout carries JSON-RPC frames; all logging goes to stderr.
	wire.SetupLogger(os.Stderr, app.Config.LogLevel)

	if err := app.Registry.Load(context.Background(), app.Store); err != nil {
		slog.Error("failed to load catalog", "path", app.Store.Path(), "error", err)
		os.Exit(1)
	}

	srv := mcptransport.New(app.Registry)
	slog.Info("mcp-agents serving on stdio", "agents", app.Registry.Len())

	if err := srv.ServeStdio(); err != nil {
		slog.Error("mcp server error", "error", err)
		os.Exit(1)
	}

	slog.Info("mcp-agents stopped")
}

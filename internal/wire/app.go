package wire

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alanyang/agent-catalog/internal/adapter/file"
	"github.com/alanyang/agent-catalog/internal/config"
	generatorsvc "github.com/alanyang/agent-catalog/internal/service/generator"
	registrysvc "github.com/alanyang/agent-catalog/internal/service/registry"
)

// App holds the wired components shared by the CLI and the MCP server.
type App struct {
	Config    config.Config
	Store     *file.Store
	Registry  *registrysvc.Registry
	Generator *generatorsvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their port dependencies. catalogPath, when non-empty, overrides the
// configured interchange file (set by the --catalog flag).
func Build(configPath, catalogPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	store := file.NewStore(cfg.CatalogPath)

	return &App{
		Config:    cfg,
		Store:     store,
		Registry:  registrysvc.New(),
		Generator: generatorsvc.NewService(store),
	}, nil
}

// SetupLogger installs the process-wide slog JSON handler. The MCP server
// passes stderr so stdout stays free for JSON-RPC frames.
func SetupLogger(w io.Writer, level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
}

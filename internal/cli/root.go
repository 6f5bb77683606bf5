// Package cli is the cobra command tree for agentctl. It is a thin console
// caller over the registry and generator services — all catalog logic lives
// in internal/service.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alanyang/agent-catalog/internal/wire"
)

var (
	cfgFile     string
	catalogPath string

	// wired in PersistentPreRunE, shared by all subcommands
	app *wire.App
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentctl",
		Short: "agentctl — generate and query the agent catalog",
		Long: "agentctl maintains a catalog of agent definitions: a deterministic\n" +
			"generator expands a fixed business taxonomy into agents.json, and the\n" +
			"registry commands look up and dispatch against the loaded catalog.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = wire.Build(cfgFile, catalogPath)
			if err != nil {
				return err
			}
			wire.SetupLogger(os.Stderr, app.Config.LogLevel)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "agentctl.yaml", "path to config file")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (overrides config)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newAgentCmd())
	return cmd
}

// Execute runs the CLI and returns any command error.
func Execute() error {
	return newRootCmd().Execute()
}

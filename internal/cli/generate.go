package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the agent catalog from the built-in taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Generator.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Generated %d agents across %d categories → %s\n",
				summary.Total, len(summary.Categories), app.Store.Path())
			fmt.Println("\nAgent distribution:")
			for _, c := range summary.Categories {
				fmt.Printf("  - %s: %d agents\n", c.Category, c.Count)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Query and dispatch against the loaded catalog",
	}

	cmd.AddCommand(newAgentListCmd())
	cmd.AddCommand(newAgentGetCmd())
	cmd.AddCommand(newAgentRunCmd())
	return cmd
}

func newAgentListCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Registry.Load(cmd.Context(), app.Store); err != nil {
				return err
			}

			n := 0
			for _, a := range app.Registry.List() {
				if role != "" && a.Role != role {
					continue
				}
				fmt.Printf("  %-48s %-24s model=%s\n", a.ID, a.Name, a.Model)
				n++
			}
			fmt.Printf("%d agents\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "filter by category name (e.g. Sales)")
	return cmd
}

func newAgentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <agent-id>",
		Short: "Show one agent definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Registry.Load(cmd.Context(), app.Store); err != nil {
				return err
			}

			a, ok := app.Registry.Get(args[0])
			if !ok {
				fmt.Printf("agent %q not found\n", args[0])
				return nil
			}

			fmt.Printf("Agent: %s (%s)\n", a.ID, a.Name)
			fmt.Printf("  Role:         %s\n", a.Role)
			fmt.Printf("  Model:        %s\n", a.Model)
			fmt.Printf("  Capabilities: %s\n", strings.Join(a.Capabilities, ", "))
			fmt.Printf("  Description:  %s\n", a.Description)
			return nil
		},
	}
}

func newAgentRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <agent-id> <prompt>",
		Short: "Dispatch a prompt to an agent (stub — no model is invoked)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Registry.Load(cmd.Context(), app.Store); err != nil {
				return err
			}

			out, ok := app.Registry.Execute(cmd.Context(), args[0], args[1])
			if !ok {
				fmt.Printf("agent %q not found\n", args[0])
				return nil
			}
			fmt.Println(out)
			return nil
		},
	}
}

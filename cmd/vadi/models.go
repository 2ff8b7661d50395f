package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vadi/internal/modules/compare"
)

func modelsCommand(registry *compare.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List configured model endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := registry.All()
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no model endpoints configured (set VADI_OPENAI_URL, VADI_GEMINI_URL or VADI_CLAUDE_URL)")
				return nil
			}
			for _, m := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %s\n", m.ID, m.Name, m.Endpoint)
			}
			return nil
		},
	}
}

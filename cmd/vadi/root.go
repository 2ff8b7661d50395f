package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"vadi/internal/config"
	"vadi/internal/modules/compare"
)

func newRootCommand(cfg config.Config, client *http.Client) *cobra.Command {
	root := &cobra.Command{
		Use:          "vadi",
		Short:        "Compare answers from several AI models",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", cfg.Log.Level, "log level (debug, info, warn, error)")

	registry := compare.NewRegistry(descriptors(cfg.Models)...)
	root.AddCommand(
		compareCommand(cfg, registry, client),
		modelsCommand(registry),
	)
	return root
}

func descriptors(models []config.ModelEndpoint) []compare.ModelDescriptor {
	out := make([]compare.ModelDescriptor, 0, len(models))
	for _, m := range models {
		out = append(out, compare.ModelDescriptor{ID: m.ID, Name: m.Name, Endpoint: m.Endpoint, Color: m.Color})
	}
	return out
}

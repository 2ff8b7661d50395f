package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vadi/internal/config"
	"vadi/internal/logger"
	"vadi/internal/modules/compare"
	"vadi/internal/modules/notify"
)

// stderrSink prints failure notices as they are emitted.
type stderrSink struct {
	cmd *cobra.Command
}

func (s stderrSink) Notify(_ context.Context, n notify.Notification) error {
	fmt.Fprintf(s.cmd.ErrOrStderr(), "[%s] %s: %s (%s)\n", n.Type, n.Title, n.Message, n.Detail)
	return nil
}

func compareCommand(cfg config.Config, registry *compare.Registry, client *http.Client) *cobra.Command {
	var (
		modeName string
		models   []string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "compare [prompt]",
		Short: "Send one prompt to the selected models and print their answers",
		Long: `Send one prompt to every selected model and print the normalized answers
in selection order. Without a prompt the sample request for the mode is used.

Examples:
  vadi compare --mode vacation --models chatgpt,gemini "Una semana en La Fortuna"
  vadi compare --mode business --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireEndpoints(); err != nil {
				return err
			}
			mode, err := compare.ParseMode(modeName)
			if err != nil {
				return err
			}
			if len(models) == 0 {
				for _, m := range registry.All() {
					models = append(models, m.ID)
				}
			}
			selected, err := registry.Select(models)
			if err != nil {
				return err
			}
			prompt := strings.Join(args, " ")
			if strings.TrimSpace(prompt) == "" {
				prompt = compare.DefaultPrompt(mode)
			}

			level, _ := cmd.Flags().GetString("log-level")
			zl, err := logger.New(level, "console")
			if err != nil {
				return err
			}
			defer func() { _ = zl.Sync() }()

			svc := compare.NewService(client, stderrSink{cmd: cmd}, compare.WithLogger(zl.Named("compare")))
			snap, err := svc.Submit(cmd.Context(), compare.Request{Prompt: prompt, Mode: mode, Models: selected})
			if err != nil {
				return err
			}
			zl.Debug("done", zap.Int("responses", len(snap.Responses)))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			printSnapshot(cmd, snap)
			return nil
		},
	}
	cmd.Flags().StringVar(&modeName, "mode", string(compare.ModeVacation), "analysis mode: vacation|business")
	cmd.Flags().StringSliceVar(&models, "models", nil, "model ids in display order (default: all configured)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")
	return cmd
}

func printSnapshot(cmd *cobra.Command, snap *compare.Snapshot) {
	out := cmd.OutOrStdout()
	for _, env := range snap.Ordered() {
		fmt.Fprintf(out, "===== %s =====\n%s\n\n", env.ModelName, env.Text)
	}
	if len(snap.Locations) > 0 {
		fmt.Fprintln(out, "===== Ubicaciones =====")
		for _, p := range snap.Locations {
			fmt.Fprintf(out, "%s\t%.4f, %.4f\n", p.Name, p.Lat, p.Lng)
		}
	}
}

// README: CLI entry point; runs a comparison from the terminal against the configured endpoints.
package main

import (
	"fmt"
	"net/http"
	"os"

	"vadi/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	root := newRootCommand(cfg, &http.Client{Timeout: cfg.HTTP.Timeout})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

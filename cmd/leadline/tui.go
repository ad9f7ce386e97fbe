package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leadline-crm/leadline/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive client",
		Long:  `Open the full-screen interactive client: dashboard, leads, follow-ups, and statistics.`,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, _, err := newClient(true)
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithClient(client)}

	// The cache only enables stale fallbacks; the TUI works without it.
	store, err := openCache(ctx)
	if err != nil {
		slog.Warn("snapshot cache unavailable", "error", err)
	} else {
		defer func() {
			_ = store.Close()
		}()
		opts = append(opts, tui.WithCache(store))
	}

	return tui.Run(ctx, opts...)
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
	"github.com/wanderfolk/wayfarer/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the club directory interactively",
		Long:  `Open an interactive browser over the members' club directory. Typing re-filters the list live.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}

			showOnboardingHint(cmd)

			return tui.Run(directory.NewClubSearch(cats))
		},
	}
}

// showOnboardingHint prints a first-run hint once. State trouble only logs;
// browsing works without the database.
func showOnboardingHint(cmd *cobra.Command) {
	ctx := cmd.Context()

	store, err := initState(ctx)
	if err != nil {
		slog.Debug("Skipping onboarding check", "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	seen, err := store.OnboardingSeen(ctx)
	if err != nil || seen {
		return
	}

	fmt.Println(cli.SubtleStyle.Render(
		"Welcome to wayfarer. Try 'wayfarer clubs --help' for filter flags, and esc to leave the browser."))
	if err := store.MarkOnboardingSeen(ctx); err != nil {
		slog.Debug("Failed to record onboarding flag", "error", err)
	}
}

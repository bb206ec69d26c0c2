package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/model"
	"github.com/wanderfolk/wayfarer/internal/sheets"
)

func exportCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tracked stays to Google Sheets or CSV",
		Long:  `Write the recorded stays report to the configured Google Sheet, or to a CSV file with --csv. Use '-' to write CSV to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stays, err := store.Stays(ctx)
			if err != nil {
				return err
			}
			if len(stays) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No stays recorded, nothing to export."))
				return nil
			}

			if csvPath != "" {
				return exportCSV(csvPath, stays, cmd)
			}

			cfg := sheets.Config{
				CredentialsPath: expandPath(viper.GetString("sheets.credentials")),
				SpreadsheetID:   viper.GetString("sheets.spreadsheet_id"),
				SheetName:       viper.GetString("sheets.sheet_name"),
				RetryAttempts:   viper.GetInt("sheets.retry_attempts"),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			writer, err := sheets.NewWriter(ctx, cfg, slog.Default())
			if err != nil {
				return err
			}
			if err := writer.WriteStays(ctx, stays); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Exported %d stays to Google Sheets.", len(stays))))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to this file instead of Google Sheets ('-' for stdout)")

	return cmd
}

func exportCSV(path string, stays []model.Stay, cmd *cobra.Command) error {
	if path == "-" {
		return sheets.WriteCSV(cmd.OutOrStdout(), stays)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := sheets.WriteCSV(f, stays); err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(
		fmt.Sprintf("Exported %d stays to %s.", len(stays), path)))
	return nil
}

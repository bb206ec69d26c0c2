package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/model"
)

func trackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track days spent per country",
		Long:  `Record and summarize days spent in each country per calendar year, for visa and tax-residency planning.`,
	}

	cmd.AddCommand(trackAddCmd())
	cmd.AddCommand(trackListCmd())
	cmd.AddCommand(trackSummaryCmd())

	return cmd
}

func trackAddCmd() *cobra.Command {
	var (
		country string
		code    string
		days    int
		year    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record days spent in a country",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}
			if year == 0 {
				year = time.Now().Year()
			}

			store, err := initState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stay := model.Stay{
				RecordedAt:  time.Now(),
				Country:     country,
				CountryCode: code,
				Year:        year,
				Days:        days,
			}
			if err := store.AddStay(cmd.Context(), stay); err != nil {
				return err
			}

			total, err := store.DaysInCountry(cmd.Context(), code, year)
			if err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Recorded %d days in %s. Total for %d: %d days.", days, country, year, total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "country name")
	cmd.Flags().StringVar(&code, "code", "", "ISO country code")
	cmd.Flags().IntVar(&days, "days", 0, "days spent")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func trackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded stays",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stays, err := store.Stays(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Recorded Stays"))
			if len(stays) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No stays recorded yet. Use 'wayfarer track add'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COUNTRY\tCODE\tYEAR\tDAYS\tRECORDED")
			for _, s := range stays {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					s.Country, s.CountryCode, s.Year, s.Days, s.RecordedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

// residencyThreshold is the common 183-day tax-residency line.
const residencyThreshold = 183

func trackSummaryCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize days per country for a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 {
				year = time.Now().Year()
			}

			store, err := initState(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			byCountry, err := store.DaysByCountry(cmd.Context(), year)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title(fmt.Sprintf("Days per country, %d", year)))
			if len(byCountry) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No stays recorded for this year."))
				return nil
			}

			codes := make([]string, 0, len(byCountry))
			for code := range byCountry {
				codes = append(codes, code)
			}
			sort.Slice(codes, func(i, j int) bool {
				if byCountry[codes[i]] != byCountry[codes[j]] {
					return byCountry[codes[i]] > byCountry[codes[j]]
				}
				return codes[i] < codes[j]
			})

			for _, code := range codes {
				days := byCountry[code]
				line := fmt.Sprintf("  %s: %d days", code, days)
				if days >= residencyThreshold {
					fmt.Println(cli.WarningStyle.Render(line + "  (over 183-day residency line)"))
				} else {
					fmt.Println(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")

	return cmd
}

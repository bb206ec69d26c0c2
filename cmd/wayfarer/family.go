package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
)

func familyCmd() *cobra.Command {
	var (
		city       string
		country    string
		region     string
		kind       string
		query      string
		languages  []string
		maxMonthly float64
		byKind     bool
	)

	cmd := &cobra.Command{
		Use:   "family",
		Short: "Search family services",
		Long:  `Filter childcare, education, healthcare and security providers for relocating families.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}
			search := directory.NewFamilySearch(cats)

			if byKind {
				printCounts("Family services by kind", search.CountByKind())
				return nil
			}

			crit := directory.FamilyCriteria{
				City:       city,
				Country:    country,
				Region:     region,
				Kind:       kind,
				Query:      query,
				Languages:  languages,
				MaxMonthly: floatFlag(maxMonthly),
			}

			services, err := search.Search(crit)
			if err != nil {
				return err
			}
			active, err := search.ActiveFilterCount(crit)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Family Services"))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCITY\tKIND\tLANGUAGES\tMONTHLY\tRATING")
			for _, s := range services {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.0f\t%.1f\n",
					s.Name, s.City, s.Kind, strings.Join(s.Languages, ","), s.MonthlyFeeUSD, s.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.FilterSummary(len(services), active))
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&country, "country", "", "filter by country")
	cmd.Flags().StringVar(&region, "region", "", "filter by region (expands to the region's countries)")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (childcare, education, healthcare, security)")
	cmd.Flags().StringVar(&query, "query", "", "free-text search over name and description")
	cmd.Flags().StringSliceVar(&languages, "language", nil, "require a spoken language (repeatable)")
	cmd.Flags().Float64Var(&maxMonthly, "max-monthly", 0, "maximum monthly fee in USD")
	cmd.Flags().BoolVar(&byKind, "by-kind", false, "show catalog totals per kind instead of a list")

	return cmd
}

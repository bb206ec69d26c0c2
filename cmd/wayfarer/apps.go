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

func appsCmd() *cobra.Command {
	var (
		country     string
		countryCode string
		query       string
		categories  []string
		platforms   []string
		freeOnly    bool
		byCategory  bool
	)

	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Search government apps",
		Long:  `Filter official government apps by country, category, platform and price.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}
			search := directory.NewGovAppSearch(cats)

			if byCategory {
				printCounts("Government apps by category", search.CountByCategory())
				return nil
			}

			crit := directory.GovAppCriteria{
				Country:     country,
				CountryCode: countryCode,
				Query:       query,
				Categories:  categories,
				Platforms:   platforms,
				FreeOnly:    freeOnly,
			}

			apps, err := search.Search(crit)
			if err != nil {
				return err
			}
			active, err := search.ActiveFilterCount(crit)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Government Apps"))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOUNTRY\tCATEGORIES\tPLATFORMS\tFREE\tRATING")
			for _, a := range apps {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%.1f\n",
					a.Name, a.Country, strings.Join(a.Categories, ","), strings.Join(a.Platforms, ","),
					a.Free, a.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.FilterSummary(len(apps), active))
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "filter by country")
	cmd.Flags().StringVar(&countryCode, "country-code", "", "filter by ISO country code")
	cmd.Flags().StringVar(&query, "query", "", "free-text search over name and description")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "match any of these categories (repeatable)")
	cmd.Flags().StringSliceVar(&platforms, "platform", nil, "match any of these platforms (repeatable)")
	cmd.Flags().BoolVar(&freeOnly, "free", false, "only free apps")
	cmd.Flags().BoolVar(&byCategory, "by-category", false, "show catalog totals per category instead of a list")

	return cmd
}

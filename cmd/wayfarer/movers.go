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

func moversCmd() *cobra.Command {
	var (
		query     string
		regions   []string
		services  []string
		maxPrice  float64
		minRating float64
		popular   int
	)

	cmd := &cobra.Command{
		Use:   "movers",
		Short: "Search international moving companies",
		Long:  `Filter relocation providers by region coverage, offered services, price and rating.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}
			search := directory.NewMoverSearch(cats)

			if popular > 0 {
				fmt.Println(cli.Title("Best-covered cities"))
				for i, p := range search.PopularCities(popular) {
					fmt.Printf("  %d. %s (%d providers)\n", i+1, p.City.Name, p.Providers)
				}
				return nil
			}

			crit := directory.MoverCriteria{
				Query:     query,
				Regions:   regions,
				Services:  services,
				MaxPrice:  floatFlag(maxPrice),
				MinRating: floatFlag(minRating),
			}

			movers, err := search.Search(crit)
			if err != nil {
				return err
			}
			active, err := search.ActiveFilterCount(crit)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Moving Companies"))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tREGIONS\tSERVICES\tFROM\tRATING")
			for _, m := range movers {
				fmt.Fprintf(w, "%s\t%s\t%s\t$%.0f\t%.1f\n",
					m.Name, strings.Join(m.Regions, ","), strings.Join(m.Services, ","),
					m.PriceBand.MinUSD, m.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.FilterSummary(len(movers), active))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "free-text search over name and description")
	cmd.Flags().StringSliceVar(&regions, "region", nil, "match any of these regions (repeatable)")
	cmd.Flags().StringSliceVar(&services, "service", nil, "require a service (repeatable)")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum starting price in USD")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum rating")
	cmd.Flags().IntVar(&popular, "popular", 0, "show the N cities covered by the most providers")

	return cmd
}

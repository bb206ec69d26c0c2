package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
)

func officesCmd() *cobra.Command {
	var (
		city        string
		country     string
		region      string
		query       string
		amenities   []string
		minCapacity float64
		maxDeskDay  float64
	)

	cmd := &cobra.Command{
		Use:   "offices",
		Short: "Search remote offices and coworking spaces",
		Long:  `Filter coworking and serviced offices by location, capacity, desk price and amenities.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}
			search := directory.NewOfficeSearch(cats)

			crit := directory.OfficeCriteria{
				City:        city,
				Country:     country,
				Region:      region,
				Query:       query,
				Amenities:   amenities,
				MinCapacity: floatFlag(minCapacity),
				MaxDeskDay:  floatFlag(maxDeskDay),
			}

			offices, err := search.Search(crit)
			if err != nil {
				return err
			}
			active, err := search.ActiveFilterCount(crit)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Remote Offices"))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCITY\tCAPACITY\tDESK/DAY\tRATING")
			for _, o := range offices {
				fmt.Fprintf(w, "%s\t%s\t%.0f\t$%.0f\t%.1f\n",
					o.Name, o.City, o.Capacity, o.DeskDayUSD, o.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.FilterSummary(len(offices), active))
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&country, "country", "", "filter by country")
	cmd.Flags().StringVar(&region, "region", "", "filter by region")
	cmd.Flags().StringVar(&query, "query", "", "free-text search over name and description")
	cmd.Flags().StringSliceVar(&amenities, "amenity", nil, "require an amenity (repeatable)")
	cmd.Flags().Float64Var(&minCapacity, "min-capacity", 0, "minimum desk capacity")
	cmd.Flags().Float64Var(&maxDeskDay, "max-desk-day", 0, "maximum desk price per day in USD")

	return cmd
}

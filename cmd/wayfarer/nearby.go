package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
	"github.com/wanderfolk/wayfarer/internal/geo"
	"github.com/wanderfolk/wayfarer/internal/model"
)

func nearbyCmd() *cobra.Command {
	var (
		here  bool
		limit int
	)

	cmd := &cobra.Command{
		Use:   "nearby [city]",
		Short: "Find remote offices near a city or your current location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}

			var target model.Coordinates
			var label string
			switch {
			case here:
				fix, err := initLocation().Current(cmd.Context())
				if err != nil {
					return err
				}
				target = fix.Coordinates
				label = fix.City
				if fix.IsUnknown() {
					label = "your location"
				}
			case len(args) == 1:
				city, err := cats.CityByName(args[0])
				if err != nil {
					return err
				}
				target = city.Coordinates
				label = city.Name
			default:
				return fmt.Errorf("provide a city name or --here")
			}

			search := directory.NewOfficeSearch(cats)
			all, err := search.Search(directory.OfficeCriteria{})
			if err != nil {
				return err
			}
			ranked := search.NearestTo(target, all)
			if limit > 0 && limit < len(ranked) {
				ranked = ranked[:limit]
			}

			fmt.Println(cli.Title(fmt.Sprintf("Offices near %s", label)))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCITY\tDISTANCE\tDESK/DAY\tRATING")
			for _, o := range ranked {
				fmt.Fprintf(w, "%s\t%s\t%.0f km\t$%.0f\t%.1f\n",
					o.Name, o.City, geo.Distance(target, o.Coordinates), o.DeskDayUSD, o.Rating)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&here, "here", false, "use your current location instead of a city name")
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of results")

	return cmd
}

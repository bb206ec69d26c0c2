package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
)

func locateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show your current location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fix, err := initLocation().Current(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Current Location"))
			if fix.IsUnknown() {
				fmt.Println(cli.WarningStyle.Render("Place lookup failed, showing coordinates only."))
			} else {
				fmt.Println(cli.KeyValue("City", fix.City))
				fmt.Println(cli.KeyValue("Country", fmt.Sprintf("%s (%s)", fix.Country, fix.CountryCode)))
			}
			fmt.Println(cli.KeyValue("Coordinates", fmt.Sprintf("%.4f, %.4f", fix.Coordinates.Lat, fix.Coordinates.Lng)))
			fmt.Println(cli.KeyValue("As of", fix.Timestamp.Format("2006-01-02 15:04:05 MST")))
			return nil
		},
	}
}

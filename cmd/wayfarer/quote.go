package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
	"github.com/wanderfolk/wayfarer/internal/quote"
)

func quoteCmd() *cobra.Command {
	var (
		fromCity string
		toCity   string
		volume   float64
		regions  []string
		services []string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Collect moving quotes from matching providers",
		Long:  `Ask every matching moving company to price a move. Providers that fail to respond are reported individually; the rest of the quotes still arrive.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}

			search := directory.NewMoverSearch(cats)
			providers, err := search.Search(directory.MoverCriteria{
				Regions:  regions,
				Services: services,
			})
			if err != nil {
				return err
			}
			if len(providers) == 0 {
				fmt.Println(cli.WarningStyle.Render("No providers match the given regions and services."))
				return nil
			}

			invoker, err := initBackend()
			if err != nil {
				return err
			}

			perProvider := viper.GetDuration("quote.provider_timeout")
			svc := quote.NewService(invoker, perProvider)
			req := quote.NewRequest(fromCity, toCity, volume)

			slog.Info("Collecting quotes",
				"request_id", req.ID,
				"from", fromCity,
				"to", toCity,
				"providers", len(providers))

			bar := progressbar.NewOptions(len(providers),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Requesting quotes..."),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			start := time.Now()
			quotes := svc.Collect(cmd.Context(), req, providers, func() {
				_ = bar.Add(1)
			})

			fmt.Println(cli.Title(fmt.Sprintf("Quotes: %s → %s (%.0f m³)", fromCity, toCity, volume)))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tQUOTE\tETA\tSTATUS")
			failed := 0
			for _, q := range quotes {
				if q.Failed() {
					failed++
					fmt.Fprintf(w, "%s\t-\t-\t%s\n", q.Provider.Name, q.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t$%.0f\t%d days\tok\n",
					q.Provider.Name, q.Estimate.AmountUSD, q.Estimate.ETADays)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				fmt.Println(cli.WarningStyle.Render(
					fmt.Sprintf("%d of %d providers did not respond.", failed, len(quotes))))
			}
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("Collected in %s.", time.Since(start).Round(time.Millisecond))))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromCity, "from", "", "origin city")
	cmd.Flags().StringVar(&toCity, "to", "", "destination city")
	cmd.Flags().Float64Var(&volume, "volume", 0, "shipment volume in cubic meters")
	cmd.Flags().StringSliceVar(&regions, "region", nil, "only providers covering these regions (repeatable)")
	cmd.Flags().StringSliceVar(&services, "service", nil, "only providers offering these services (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("volume")

	return cmd
}

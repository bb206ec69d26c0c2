package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
)

func clubsCmd() *cobra.Command {
	var (
		city        string
		country     string
		region      string
		category    string
		query       string
		amenities   []string
		minPrice    float64
		maxPrice    float64
		maxWaitlist float64
		byCategory  bool
	)

	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "Search the members' club directory",
		Long:  `Filter private members' clubs by location, category, annual fee, waitlist and amenities.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := initCatalogs()
			if err != nil {
				return err
			}
			search := directory.NewClubSearch(cats)

			if byCategory {
				printCounts("Clubs by category", search.CountByCategory())
				return nil
			}

			crit := directory.ClubCriteria{
				City:        city,
				Country:     country,
				Region:      region,
				Category:    category,
				Query:       query,
				Amenities:   amenities,
				PriceMin:    floatFlag(minPrice),
				PriceMax:    floatFlag(maxPrice),
				MaxWaitlist: floatFlag(maxWaitlist),
			}

			clubs, err := search.Search(crit)
			if err != nil {
				return err
			}
			active, err := search.ActiveFilterCount(crit)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Members' Clubs"))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCITY\tCATEGORY\tANNUAL FEE\tWAITLIST\tRATING")
			for _, c := range clubs {
				fmt.Fprintf(w, "%s\t%s\t%s\t$%.0f\t%.0f mo\t%.1f\n",
					c.Name, c.City, c.Category, c.AnnualFeeUSD, c.WaitlistMonths, c.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.FilterSummary(len(clubs), active))
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&country, "country", "", "filter by country")
	cmd.Flags().StringVar(&region, "region", "", "filter by region")
	cmd.Flags().StringVar(&category, "category", "", "filter by category (social, business, sports, arts)")
	cmd.Flags().StringVar(&query, "query", "", "free-text search over name and description")
	cmd.Flags().StringSliceVar(&amenities, "amenity", nil, "require an amenity (repeatable)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum annual fee in USD")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum annual fee in USD")
	cmd.Flags().Float64Var(&maxWaitlist, "max-waitlist", 0, "maximum waitlist in months")
	cmd.Flags().BoolVar(&byCategory, "by-category", false, "show catalog totals per category instead of a list")

	return cmd
}

// printCounts renders a count map in descending order.
func printCounts(title string, counts map[string]int) {
	fmt.Println(cli.Title(title))

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		fmt.Printf("  %s %d\n", cli.SubtleStyle.Render(k+":"), counts[k])
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanderfolk/wayfarer/internal/backend"
	"github.com/wanderfolk/wayfarer/internal/cli"
)

func assessCmd() *cobra.Command {
	var (
		items []string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Get an AI assessment of your household inventory",
		Long:  `Send an inventory list to the assessment function and get back a volume estimate with packing recommendations.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(items) == 0 {
				return fmt.Errorf("provide at least one --item")
			}

			invoker, err := initBackend()
			if err != nil {
				return err
			}

			result, err := backend.AssessInventory(cmd.Context(), invoker, backend.AssessInventoryRequest{
				Items: items,
				Notes: notes,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.Title("Inventory Assessment"))
			fmt.Println(result.Summary)
			fmt.Println(cli.KeyValue("Estimated volume", fmt.Sprintf("%.1f m³", result.EstimatedVolumeM3)))
			if len(result.Recommendations) > 0 {
				fmt.Println(cli.BoldStyle.Render("Recommendations:"))
				for _, r := range result.Recommendations {
					fmt.Printf("  - %s\n", r)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&items, "item", nil, "inventory item (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes for the assessment")

	return cmd
}

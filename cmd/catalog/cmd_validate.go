package main

import (
	"fmt"

	"github.com/houranii/tyreshop/fixtures"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate every fixture file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := fixtures.LoadAll()
			if err != nil {
				return fmt.Errorf("fixtures invalid: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- Fixture Validation ---")
			fmt.Fprintf(out, "tyres:     %d\n", len(d.Tyres))
			fmt.Fprintf(out, "locations: %d\n", len(d.Locations))
			fmt.Fprintf(out, "users:     %d\n", len(d.Users))
			fmt.Fprintf(out, "customers: %d\n", len(d.Customers))
			fmt.Fprintf(out, "orders:    %d\n", len(d.Orders))
			fmt.Fprintln(out, "--------------------------")
			return nil
		},
	}
}

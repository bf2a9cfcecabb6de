package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/houranii/tyreshop/filter"
	"github.com/houranii/tyreshop/fixtures"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/spf13/cobra"
)

type optionsResult struct {
	Selection models.FilterSelection `json:"selection"`
	Options   models.FilterOptions   `json:"available_options"`
	Tyres     []models.Tyre          `json:"tyres"`
}

func newOptionsCmd() *cobra.Command {
	var (
		flags  = map[string]*string{}
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Filter the catalog and print matching tyres and the options still available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := services.SelectionFromQuery(func(name string) string {
				if v, ok := flags[name]; ok {
					return *v
				}
				return ""
			})
			if err != nil {
				return err
			}

			d, err := fixtures.LoadAll()
			if err != nil {
				return err
			}
			res := filter.Update(d.Tyres, sel)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(optionsResult{Selection: sel, Options: res.Options, Tyres: res.Tyres})
			}
			return printOptions(cmd.OutOrStdout(), res)
		},
	}

	// query parameter name -> flag name
	for param, flag := range map[string]string{
		services.FacetWidth:       "width",
		services.FacetProfile:     "profile",
		services.FacetRimSize:     "rim-size",
		services.FacetVehicleType: "vehicle-type",
		services.FacetBrand:       "brand",
		"q":                       "q",
	} {
		flags[param] = cmd.Flags().String(flag, "", "filter by "+strings.ReplaceAll(flag, "-", " "))
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printOptions(w io.Writer, res filter.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBRAND\tMODEL\tSIZE\tPRICE\tSTOCK")
	for _, t := range res.Tyres {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%d\n", t.ID, t.Brand, t.Model, t.Size, t.EffectivePrice(), t.TotalStock())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d tyres\n", len(res.Tyres))
	fmt.Fprintf(w, "widths:    %s\n", joinInts(res.Options.Widths))
	fmt.Fprintf(w, "profiles:  %s\n", joinInts(res.Options.Profiles))
	fmt.Fprintf(w, "rim sizes: %s\n", joinInts(res.Options.RimSizes))
	fmt.Fprintf(w, "brands:    %s\n", strings.Join(res.Options.Brands, ", "))
	return nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

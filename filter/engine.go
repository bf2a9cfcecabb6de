// Package filter computes the faceted tyre search shown on the product
// listing and the homepage quick search.
package filter

import (
	"sort"
	"strings"

	"github.com/houranii/tyreshop/models"
)

// Result is the derived state for one selection over one catalog snapshot.
type Result struct {
	Tyres   []models.Tyre
	Options models.FilterOptions
}

// Apply returns the catalog entries matching every set facet and the query,
// in catalog order. It never modifies the catalog.
func Apply(catalog []models.Tyre, sel models.FilterSelection) []models.Tyre {
	query := strings.ToLower(sel.Query)

	out := make([]models.Tyre, 0, len(catalog))
	for _, t := range catalog {
		if sel.Width != nil && t.Size.Width != *sel.Width {
			continue
		}
		if sel.Profile != nil && t.Size.Profile != *sel.Profile {
			continue
		}
		if sel.RimSize != nil && t.Size.RimSize != *sel.RimSize {
			continue
		}
		if sel.VehicleType != nil && !t.HasVehicleType(*sel.VehicleType) {
			continue
		}
		if sel.Brand != nil && t.Brand != *sel.Brand {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesQuery expects query to be lower-cased already.
func matchesQuery(t models.Tyre, query string) bool {
	return strings.Contains(strings.ToLower(t.Brand), query) ||
		strings.Contains(strings.ToLower(t.Model), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

// AvailableOptions collects the distinct facet values of the tyres that match
// the full selection, including each facet's own current value.
func AvailableOptions(catalog []models.Tyre, sel models.FilterSelection) models.FilterOptions {
	return optionsOf(Apply(catalog, sel))
}

// AllOptions is the unconstrained option set of a catalog.
func AllOptions(catalog []models.Tyre) models.FilterOptions {
	return optionsOf(catalog)
}

// Update recomputes both halves of the derived state from one snapshot.
func Update(catalog []models.Tyre, sel models.FilterSelection) Result {
	tyres := Apply(catalog, sel)
	return Result{
		Tyres:   tyres,
		Options: optionsOf(tyres),
	}
}

func optionsOf(tyres []models.Tyre) models.FilterOptions {
	widths := make(map[int]struct{})
	profiles := make(map[int]struct{})
	rims := make(map[int]struct{})
	brands := make(map[string]struct{})

	for _, t := range tyres {
		widths[t.Size.Width] = struct{}{}
		profiles[t.Size.Profile] = struct{}{}
		rims[t.Size.RimSize] = struct{}{}
		brands[t.Brand] = struct{}{}
	}

	return models.FilterOptions{
		Widths:   sortedInts(widths),
		Profiles: sortedInts(profiles),
		RimSizes: sortedInts(rims),
		Brands:   sortedStrings(brands),
	}
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

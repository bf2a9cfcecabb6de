// models/filters.go
package models

// FilterSelection holds the facet values a visitor has chosen.
// A nil facet is unset and matches every tyre; an empty Query is unset.
type FilterSelection struct {
	Width       *int         `json:"width"`
	Profile     *int         `json:"profile"`
	RimSize     *int         `json:"rim_size"`
	VehicleType *VehicleType `json:"vehicle_type"`
	Brand       *string      `json:"brand"`
	Query       string       `json:"query"`
}

// IsEmpty reports whether no facet and no query is set.
func (s FilterSelection) IsEmpty() bool {
	return s.Width == nil && s.Profile == nil && s.RimSize == nil &&
		s.VehicleType == nil && s.Brand == nil && s.Query == ""
}

// FilterOptions are the values each discrete facet selector may offer.
type FilterOptions struct {
	Widths   []int    `json:"widths"`
	Profiles []int    `json:"profiles"`
	RimSizes []int    `json:"rim_sizes"`
	Brands   []string `json:"brands"`
}

// FilterStateResponse is what the storefront renders after every facet change.
type FilterStateResponse struct {
	Selection        FilterSelection          `json:"selection"`
	AvailableOptions FilterOptions            `json:"available_options"`
	VehicleTypes     []VehicleType            `json:"vehicle_types"`
	Products         []StorefrontTyreResponse `json:"products"`
	Total            int                      `json:"total"`
}

// SetFacetRequest sets or clears one facet. A null Value clears it.
type SetFacetRequest struct {
	Value *string `json:"value" example:"225"`
}

// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontListResponse is a page of tyres plus the options left for
// the whole (unpaginated) result.
type StorefrontListResponse struct {
	Products         []StorefrontTyreResponse `json:"products"`
	AvailableOptions FilterOptions            `json:"available_options"`
}

// FilterMetadata describes the unconstrained catalog for building filter UIs.
type FilterMetadata struct {
	Options        FilterOptions `json:"options"`
	VehicleTypes   []VehicleType `json:"vehicle_types"`
	Facets         []string      `json:"facets"`
	PriceRange     PriceRange    `json:"price_range"`
	CatalogVersion uint64        `json:"catalog_version"`
}

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/houranii/tyreshop/filter"
	"github.com/houranii/tyreshop/models"
)

var (
	ErrUnknownFacet      = errors.New("unknown filter facet")
	ErrInvalidFacetValue = errors.New("invalid filter value")
)

const (
	FacetWidth       = "width"
	FacetProfile     = "profile"
	FacetRimSize     = "rim_size"
	FacetVehicleType = "vehicle_type"
	FacetBrand       = "brand"
	FacetQuery       = "query"
)

// Facets lists every selector name in display order.
var Facets = []string{FacetWidth, FacetProfile, FacetRimSize, FacetVehicleType, FacetBrand, FacetQuery}

// ApplyFacet sets one facet of the session from its string form and
// returns the recomputed result. A nil raw clears the facet.
func ApplyFacet(fs *filter.Session, facet string, raw *string) (filter.Result, error) {
	switch facet {
	case FacetWidth, FacetProfile, FacetRimSize:
		v, err := parseDimension(facet, raw)
		if err != nil {
			return filter.Result{}, err
		}
		switch facet {
		case FacetWidth:
			return fs.SetWidth(v), nil
		case FacetProfile:
			return fs.SetProfile(v), nil
		default:
			return fs.SetRimSize(v), nil
		}
	case FacetVehicleType:
		v, err := parseVehicleType(raw)
		if err != nil {
			return filter.Result{}, err
		}
		return fs.SetVehicleType(v), nil
	case FacetBrand:
		return fs.SetBrand(parseBrand(raw)), nil
	case FacetQuery:
		q := ""
		if raw != nil {
			q = *raw
		}
		return fs.SetQuery(q), nil
	}
	return filter.Result{}, fmt.Errorf("%q: %w", facet, ErrUnknownFacet)
}

// SelectionFromQuery builds a selection from request parameters. Absent
// and blank parameters leave a facet unset; the free-text query is "q".
func SelectionFromQuery(get func(key string) string) (models.FilterSelection, error) {
	var sel models.FilterSelection
	optional := func(key string) *string {
		v := strings.TrimSpace(get(key))
		if v == "" {
			return nil
		}
		return &v
	}

	var err error
	if sel.Width, err = parseDimension(FacetWidth, optional(FacetWidth)); err != nil {
		return sel, err
	}
	if sel.Profile, err = parseDimension(FacetProfile, optional(FacetProfile)); err != nil {
		return sel, err
	}
	if sel.RimSize, err = parseDimension(FacetRimSize, optional(FacetRimSize)); err != nil {
		return sel, err
	}
	if sel.VehicleType, err = parseVehicleType(optional(FacetVehicleType)); err != nil {
		return sel, err
	}
	sel.Brand = parseBrand(optional(FacetBrand))
	sel.Query = get("q")
	return sel, nil
}

func parseDimension(facet string, raw *string) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%s %q: %w", facet, *raw, ErrInvalidFacetValue)
	}
	return &n, nil
}

func parseVehicleType(raw *string) (*models.VehicleType, error) {
	if raw == nil {
		return nil, nil
	}
	v := models.VehicleType(strings.TrimSpace(*raw))
	if !v.Valid() {
		return nil, fmt.Errorf("vehicle_type %q: %w", *raw, ErrInvalidFacetValue)
	}
	return &v, nil
}

// parseBrand treats a blank brand as the unset choice.
func parseBrand(raw *string) *string {
	if raw == nil {
		return nil
	}
	b := strings.TrimSpace(*raw)
	if b == "" {
		return nil
	}
	return &b
}

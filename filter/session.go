package filter

import (
	"github.com/houranii/tyreshop/models"
)

// Catalog supplies the current immutable catalog snapshot. Snapshot returns
// the tyres together with the version they belong to.
type Catalog interface {
	Snapshot() ([]models.Tyre, uint64)
	Version() uint64
}

// Session is one visitor's filter state. Every setter recomputes the
// filtered tyres and the available options before returning, so the two
// are always derived from the same selection and snapshot.
//
// A Session is owned by a single actor and is not safe for concurrent use.
type Session struct {
	catalog   Catalog
	selection models.FilterSelection
	result    Result
	version   uint64
	allOpts   func(catalog []models.Tyre, version uint64) models.FilterOptions
}

// Option configures a Session.
type Option func(*Session)

// WithAllOptions supplies the unconstrained option set used on reset,
// typically from a cache keyed by catalog version. fn receives the
// snapshot the session is resetting to.
func WithAllOptions(fn func(catalog []models.Tyre, version uint64) models.FilterOptions) Option {
	return func(s *Session) { s.allOpts = fn }
}

// NewSession starts with every facet unset.
func NewSession(catalog Catalog, opts ...Option) *Session {
	s := &Session{catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

func (s *Session) SetWidth(v *int) Result {
	s.selection.Width = v
	return s.recompute()
}

func (s *Session) SetProfile(v *int) Result {
	s.selection.Profile = v
	return s.recompute()
}

func (s *Session) SetRimSize(v *int) Result {
	s.selection.RimSize = v
	return s.recompute()
}

func (s *Session) SetVehicleType(v *models.VehicleType) Result {
	s.selection.VehicleType = v
	return s.recompute()
}

func (s *Session) SetBrand(v *string) Result {
	s.selection.Brand = v
	return s.recompute()
}

func (s *Session) SetQuery(q string) Result {
	s.selection.Query = q
	return s.recompute()
}

// Reset clears every facet and the query. The tyres revert to the full
// catalog and the options to the unconstrained set.
func (s *Session) Reset() Result {
	s.selection = models.FilterSelection{}
	catalog, version := s.catalog.Snapshot()
	s.version = version

	var opts models.FilterOptions
	if s.allOpts != nil {
		opts = s.allOpts(catalog, version)
	} else {
		opts = AllOptions(catalog)
	}
	s.result = Result{Tyres: catalog, Options: opts}
	return s.result
}

// Current returns the derived state, refreshing it first if the catalog
// has published a new snapshot since the last recompute.
func (s *Session) Current() Result {
	if s.catalog.Version() != s.version {
		return s.recompute()
	}
	return s.result
}

// Stale reports whether the catalog changed since the last recompute.
func (s *Session) Stale() bool {
	return s.catalog.Version() != s.version
}

func (s *Session) Selection() models.FilterSelection {
	return s.selection
}

func (s *Session) recompute() Result {
	catalog, version := s.catalog.Snapshot()
	s.version = version
	s.result = Update(catalog, s.selection)
	return s.result
}

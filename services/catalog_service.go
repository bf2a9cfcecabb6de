package services

import (
	options_cache "github.com/houranii/tyreshop/cache"
	"github.com/houranii/tyreshop/filter"
	"github.com/houranii/tyreshop/metrics"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
)

// FeaturedRating is the average rating that earns a homepage slot.
const FeaturedRating = 4.5

// CatalogService serves the read side of the storefront.
type CatalogService struct {
	tyres     *store.TyreStore
	locations *store.LocationStore
	cache     *options_cache.Cache
}

// NewCatalogService hooks cache invalidation to every catalog publish.
func NewCatalogService(tyres *store.TyreStore, locations *store.LocationStore) *CatalogService {
	cache := options_cache.New()
	tyres.OnPublish(func(uint64) { cache.Invalidate() })
	return &CatalogService{tyres: tyres, locations: locations, cache: cache}
}

// AllOptions returns the unconstrained options of the current catalog.
func (s *CatalogService) AllOptions() models.FilterOptions {
	catalog, version := s.tyres.Snapshot()
	return s.optionsFor(catalog, version)
}

func (s *CatalogService) optionsFor(catalog []models.Tyre, version uint64) models.FilterOptions {
	if opts, ok := s.cache.GetOptions(version); ok {
		return opts
	}
	opts := filter.AllOptions(catalog)
	s.cache.SetOptions(version, opts)
	return opts
}

// NewFilterSession starts a visitor's filter state over the live catalog.
func (s *CatalogService) NewFilterSession() *filter.Session {
	return filter.NewSession(s.tyres, filter.WithAllOptions(s.optionsFor))
}

// Browse runs a one-off selection without touching any session.
func (s *CatalogService) Browse(sel models.FilterSelection) filter.Result {
	catalog, version := s.tyres.Snapshot()
	if sel.IsEmpty() {
		return filter.Result{Tyres: catalog, Options: s.optionsFor(catalog, version)}
	}
	res := filter.Update(catalog, sel)
	metrics.FilterRecomputes.WithLabelValues("browse").Inc()
	metrics.FilterResultSize.Observe(float64(len(res.Tyres)))
	return res
}

// Metadata describes the current catalog for filter UIs. Prices are
// effective prices.
func (s *CatalogService) Metadata() models.FilterMetadata {
	catalog, version := s.tyres.Snapshot()
	meta := models.FilterMetadata{
		Options:        s.optionsFor(catalog, version),
		VehicleTypes:   models.VehicleTypes,
		Facets:         Facets,
		CatalogVersion: version,
	}
	for i, t := range catalog {
		p := t.EffectivePrice()
		if i == 0 || p < meta.PriceRange.Min {
			meta.PriceRange.Min = p
		}
		if p > meta.PriceRange.Max {
			meta.PriceRange.Max = p
		}
	}
	return meta
}

func (s *CatalogService) Get(id string) (models.Tyre, error) {
	return s.tyres.GetByID(id)
}

// Detail adds per-location stock to a tyre, in location order.
func (s *CatalogService) Detail(id string) (models.TyreDetailResponse, error) {
	t, err := s.tyres.GetByID(id)
	if err != nil {
		return models.TyreDetailResponse{}, err
	}

	stock := make([]models.LocationStock, 0, len(t.Stock))
	for _, loc := range s.locations.List() {
		qty, ok := t.Stock[loc.ID]
		if !ok {
			continue
		}
		stock = append(stock, models.LocationStock{LocationID: loc.ID, LocationName: loc.Name, Quantity: qty})
	}
	return models.TyreDetailResponse{
		Tyre:             t,
		StockByLocation:  stock,
		StockedLocations: t.StockedLocations(),
	}, nil
}

// Featured lists tyres that are on sale or rated FeaturedRating and up.
func (s *CatalogService) Featured() []models.Tyre {
	catalog, version := s.tyres.Snapshot()
	if cached, ok := s.cache.GetFeatured(version); ok {
		return cached
	}
	out := make([]models.Tyre, 0)
	for _, t := range catalog {
		if t.OnSale() || t.AvgRating >= FeaturedRating {
			out = append(out, t)
		}
	}
	s.cache.SetFeatured(version, out)
	return out
}

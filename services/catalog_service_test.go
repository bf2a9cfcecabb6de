package services

import (
	"testing"

	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Featured(t *testing.T) {
	s := seededStore(t)
	catalog := NewCatalogService(s.Tyres, s.Locations)

	featured := catalog.Featured()
	assert.Len(t, featured, 10)
	assert.NotContains(t, tyreIDs(featured), "10")
	assert.NotContains(t, tyreIDs(featured), "12")

	// a sale price puts tyre 12 on the homepage once the catalog republishes
	_, err := s.Tyres.Update("12", func(t *models.Tyre) error {
		t.SalePrice = f64(80)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, catalog.Featured(), 11)
}

func TestCatalog_BrowseIsStateless(t *testing.T) {
	s := seededStore(t)
	catalog := NewCatalogService(s.Tyres, s.Locations)

	all := catalog.Browse(models.FilterSelection{})
	assert.Len(t, all.Tyres, 12)
	assert.Len(t, all.Options.Brands, 12)

	truck := models.VehicleTruck
	rim := 16
	res := catalog.Browse(models.FilterSelection{VehicleType: &truck, RimSize: &rim})
	assert.Equal(t, []string{"3", "11"}, tyreIDs(res.Tyres))
	assert.Equal(t, []int{16}, res.Options.RimSizes)

	assert.Len(t, catalog.Browse(models.FilterSelection{}).Tyres, 12)
}

func TestCatalog_AllOptionsFollowsCatalog(t *testing.T) {
	s := seededStore(t)
	catalog := NewCatalogService(s.Tyres, s.Locations)

	before := catalog.AllOptions()
	assert.Equal(t, []int{15, 16, 17, 18, 19, 20}, before.RimSizes)

	_, err := s.Tyres.Create(models.Tyre{
		Brand:        "Hankook",
		Model:        "Ventus S1",
		Size:         models.TyreSize{Width: 305, Profile: 30, RimSize: 21},
		VehicleTypes: []models.VehicleType{models.VehicleCar},
		Price:        260,
	})
	require.NoError(t, err)

	after := catalog.AllOptions()
	assert.Contains(t, after.RimSizes, 21)
	assert.Contains(t, after.Brands, "Hankook")
}

func TestCatalog_SeparateCatalogsDoNotShareOptions(t *testing.T) {
	michelin := NewCatalogService(store.NewTyreStore([]models.Tyre{priced("1", 100, nil)}), store.NewLocationStore(nil))
	pirelli := priced("1", 100, nil)
	pirelli.Brand = "Pirelli"
	other := NewCatalogService(store.NewTyreStore([]models.Tyre{pirelli}), store.NewLocationStore(nil))

	assert.Equal(t, []string{"Brand1"}, michelin.AllOptions().Brands)
	assert.Equal(t, []string{"Pirelli"}, other.AllOptions().Brands)

	fs := other.NewFilterSession()
	res := fs.Reset()
	require.Len(t, res.Tyres, 1)
	assert.Equal(t, "Pirelli", res.Tyres[0].Brand)
	assert.Equal(t, []string{"Pirelli"}, res.Options.Brands)
}

func TestCatalog_Detail(t *testing.T) {
	s := seededStore(t)
	catalog := NewCatalogService(s.Tyres, s.Locations)

	d, err := catalog.Detail("1")
	require.NoError(t, err)
	assert.Equal(t, "Michelin", d.Brand)
	require.Len(t, d.StockByLocation, 7)
	assert.Equal(t, models.LocationStock{LocationID: "loc1", LocationName: "Burnside Fitting", Quantity: 12}, d.StockByLocation[0])
	assert.Equal(t, 7, d.StockedLocations)

	_, err = catalog.Detail("999")
	assert.Error(t, err)
}

func TestCatalog_Metadata(t *testing.T) {
	s := seededStore(t)
	meta := NewCatalogService(s.Tyres, s.Locations).Metadata()

	assert.Equal(t, 95.0, meta.PriceRange.Min)
	assert.Equal(t, 245.0, meta.PriceRange.Max)
	assert.Equal(t, Facets, meta.Facets)
	assert.Equal(t, uint64(1), meta.CatalogVersion)
	assert.Len(t, meta.Options.Brands, 12)
}

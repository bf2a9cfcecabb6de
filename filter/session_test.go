package filter

import (
	"testing"

	"github.com/houranii/tyreshop/models"
	"github.com/stretchr/testify/assert"
)

type fakeCatalog struct {
	tyres   []models.Tyre
	version uint64
}

func (f *fakeCatalog) Snapshot() ([]models.Tyre, uint64) { return f.tyres, f.version }

func (f *fakeCatalog) Version() uint64 { return f.version }

func (f *fakeCatalog) publish(tyres []models.Tyre) {
	f.tyres = tyres
	f.version++
}

func TestSession_StartsUnset(t *testing.T) {
	cat := &fakeCatalog{tyres: sampleCatalog(), version: 1}
	s := NewSession(cat)

	assert.True(t, s.Selection().IsEmpty())
	res := s.Current()
	assert.Equal(t, ids(cat.tyres), ids(res.Tyres))
	assert.Equal(t, AllOptions(cat.tyres), res.Options)
}

func TestSession_SettersRecomputeBothHalves(t *testing.T) {
	cat := &fakeCatalog{tyres: sampleCatalog(), version: 1}
	s := NewSession(cat)

	res := s.SetWidth(intPtr(225))
	assert.Equal(t, []string{"1", "4"}, ids(res.Tyres))
	assert.Equal(t, []string{"Michelin"}, res.Options.Brands)
	assert.Equal(t, []int{17, 18}, res.Options.RimSizes)

	res = s.SetRimSize(intPtr(18))
	assert.Equal(t, []string{"4"}, ids(res.Tyres))
	assert.Equal(t, []int{18}, res.Options.RimSizes)
	assert.Equal(t, Update(cat.tyres, s.Selection()), res)

	// clearing a facet widens the result again
	res = s.SetRimSize(nil)
	assert.Equal(t, []string{"1", "4"}, ids(res.Tyres))

	res = s.SetVehicleType(vtPtr(models.VehicleSUV))
	assert.Equal(t, []string{"1"}, ids(res.Tyres))

	res = s.SetBrand(strPtr("Goodyear"))
	assert.Empty(t, res.Tyres)
	assert.Empty(t, res.Options.Widths)

	s.SetBrand(nil)
	res = s.SetProfile(intPtr(45))
	assert.Equal(t, []string{"1"}, ids(res.Tyres))

	res = s.SetQuery("zzz")
	assert.Empty(t, res.Tyres)
	assert.Equal(t, res, s.Current())
}

func TestSession_ResetRestoresFullCatalog(t *testing.T) {
	cat := &fakeCatalog{tyres: sampleCatalog(), version: 1}
	s := NewSession(cat)

	s.SetWidth(intPtr(265))
	s.SetQuery("ko2")
	res := s.Reset()

	assert.True(t, s.Selection().IsEmpty())
	assert.Equal(t, ids(cat.tyres), ids(res.Tyres))
	assert.Equal(t, AllOptions(cat.tyres), res.Options)
	assert.Equal(t, Update(cat.tyres, models.FilterSelection{}), s.Current())
}

func TestSession_ResetUsesSuppliedAllOptions(t *testing.T) {
	cat := &fakeCatalog{tyres: sampleCatalog(), version: 1}
	calls := 0
	cached := AllOptions(cat.tyres)
	s := NewSession(cat, WithAllOptions(func(tyres []models.Tyre, version uint64) models.FilterOptions {
		calls++
		assert.Equal(t, cat.version, version)
		assert.Len(t, tyres, len(cat.tyres))
		return cached
	}))

	s.SetBrand(strPtr("Michelin"))
	res := s.Reset()
	assert.Equal(t, 2, calls)
	assert.Equal(t, cached, res.Options)
}

func TestSession_RefreshesAfterCatalogChange(t *testing.T) {
	cat := &fakeCatalog{tyres: sampleCatalog(), version: 1}
	s := NewSession(cat)
	s.SetBrand(strPtr("Michelin"))
	assert.False(t, s.Stale())

	next := append([]models.Tyre{}, cat.tyres...)
	next = append(next, tyre("8", "Michelin", "Primacy 4", 205, 55, 16, models.VehicleCar))
	cat.publish(next)

	assert.True(t, s.Stale())
	res := s.Current()
	assert.False(t, s.Stale())
	assert.Equal(t, []string{"1", "4", "7", "8"}, ids(res.Tyres))
	assert.Equal(t, []int{205, 225, 265}, res.Options.Widths)
}

package options_cache

import (
	"testing"

	"github.com/houranii/tyreshop/models"
	"github.com/stretchr/testify/assert"
)

func TestOptionsCache_KeyedByVersion(t *testing.T) {
	c := New()
	opts := models.FilterOptions{Widths: []int{225}, Profiles: []int{45}, RimSizes: []int{17}, Brands: []string{"Michelin"}}

	_, ok := c.GetOptions(1)
	assert.False(t, ok)

	c.SetOptions(1, opts)
	got, ok := c.GetOptions(1)
	assert.True(t, ok)
	assert.Equal(t, opts, got)

	_, ok = c.GetOptions(2)
	assert.False(t, ok, "a newer catalog version must miss")
}

func TestOptionsCache_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.SetOptions(1, models.FilterOptions{Brands: []string{"Michelin"}})
	a.SetFeatured(1, []models.Tyre{{ID: "1"}})

	_, ok := b.GetOptions(1)
	assert.False(t, ok)
	_, ok = b.GetFeatured(1)
	assert.False(t, ok)
}

func TestInvalidate_ClearsBothEntries(t *testing.T) {
	c := New()
	c.SetOptions(3, models.FilterOptions{})
	c.SetFeatured(3, []models.Tyre{{ID: "1"}})

	c.Invalidate()

	_, ok := c.GetOptions(3)
	assert.False(t, ok)
	_, ok = c.GetFeatured(3)
	assert.False(t, ok)
}

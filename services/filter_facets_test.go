package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/houranii/tyreshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestApplyFacet(t *testing.T) {
	svc, _ := newSessions(t, time.Hour)
	sess, _ := svc.Resolve("")

	require.NoError(t, sess.Do(func(s SessionState) error {
		res, err := ApplyFacet(s.Filter, FacetVehicleType, str("Truck"))
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "5", "10", "11"}, tyreIDs(res.Tyres))

		res, err = ApplyFacet(s.Filter, FacetRimSize, str(" 18 "))
		require.NoError(t, err)
		assert.Equal(t, []string{"5", "10"}, tyreIDs(res.Tyres))
		assert.Equal(t, []int{18}, res.Options.RimSizes)

		res, err = ApplyFacet(s.Filter, FacetQuery, str("pirelli"))
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, tyreIDs(res.Tyres))

		res, err = ApplyFacet(s.Filter, FacetRimSize, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, tyreIDs(res.Tyres))
		assert.Nil(t, s.Filter.Selection().RimSize)
		return nil
	}))
}

func TestApplyFacet_BlankBrandClears(t *testing.T) {
	svc, _ := newSessions(t, time.Hour)
	sess, _ := svc.Resolve("")

	require.NoError(t, sess.Do(func(s SessionState) error {
		res, err := ApplyFacet(s.Filter, FacetBrand, str("Michelin"))
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, tyreIDs(res.Tyres))

		for _, blank := range []string{"", "   "} {
			res, err = ApplyFacet(s.Filter, FacetBrand, str(blank))
			require.NoError(t, err)
			assert.Len(t, res.Tyres, 12)
			assert.Nil(t, s.Filter.Selection().Brand)
		}
		return nil
	}))
}

func TestApplyFacet_Rejects(t *testing.T) {
	svc, _ := newSessions(t, time.Hour)
	sess, _ := svc.Resolve("")

	require.NoError(t, sess.Do(func(s SessionState) error {
		_, err := ApplyFacet(s.Filter, "colour", str("red"))
		assert.ErrorIs(t, err, ErrUnknownFacet)

		_, err = ApplyFacet(s.Filter, FacetWidth, str("wide"))
		assert.ErrorIs(t, err, ErrInvalidFacetValue)

		_, err = ApplyFacet(s.Filter, FacetProfile, str("-45"))
		assert.ErrorIs(t, err, ErrInvalidFacetValue)

		_, err = ApplyFacet(s.Filter, FacetVehicleType, str("Bike"))
		assert.ErrorIs(t, err, ErrInvalidFacetValue)

		assert.True(t, s.Filter.Selection().IsEmpty())
		return nil
	}))
}

func TestSelectionFromQuery(t *testing.T) {
	q := url.Values{"width": {"225"}, "vehicle_type": {"Car"}, "brand": {"Michelin"}, "profile": {""}, "q": {"sport"}}
	sel, err := SelectionFromQuery(q.Get)
	require.NoError(t, err)

	require.NotNil(t, sel.Width)
	assert.Equal(t, 225, *sel.Width)
	assert.Nil(t, sel.Profile)
	assert.Nil(t, sel.RimSize)
	assert.Equal(t, models.VehicleCar, *sel.VehicleType)
	assert.Equal(t, "Michelin", *sel.Brand)
	assert.Equal(t, "sport", sel.Query)

	_, err = SelectionFromQuery(url.Values{"rim_size": {"17.5"}}.Get)
	assert.ErrorIs(t, err, ErrInvalidFacetValue)

	empty, err := SelectionFromQuery(url.Values{}.Get)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

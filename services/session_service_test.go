package services

import (
	"testing"
	"time"

	"github.com/houranii/tyreshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessions(t *testing.T, ttl time.Duration) (*SessionService, *time.Time) {
	t.Helper()
	s := seededStore(t)
	svc := NewSessionService(NewCatalogService(s.Tyres, s.Locations), ttl, zap.NewNop())
	clock := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func TestSessions_ResolveCreatesAndReuses(t *testing.T) {
	svc, _ := newSessions(t, time.Hour)

	first, created := svc.Resolve("")
	require.True(t, created)
	assert.NotEmpty(t, first.ID)

	again, created := svc.Resolve(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	_, created = svc.Resolve("unknown-id")
	assert.True(t, created)
	assert.Equal(t, 2, svc.Count())
}

func TestSessions_ExpiredSessionIsReplaced(t *testing.T) {
	svc, clock := newSessions(t, time.Hour)

	sess, _ := svc.Resolve("")
	*clock = clock.Add(time.Hour)

	next, created := svc.Resolve(sess.ID)
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, next.ID)
	assert.Equal(t, 1, svc.Count())
}

func TestSessions_Sweep(t *testing.T) {
	svc, clock := newSessions(t, time.Hour)

	old, _ := svc.Resolve("")
	*clock = clock.Add(40 * time.Minute)
	fresh, _ := svc.Resolve("")
	*clock = clock.Add(30 * time.Minute)

	assert.Equal(t, 1, svc.Sweep())
	_, created := svc.Resolve(fresh.ID)
	assert.False(t, created)
	_, created = svc.Resolve(old.ID)
	assert.True(t, created)
}

func TestSessions_StateIsPerVisitor(t *testing.T) {
	svc, _ := newSessions(t, time.Hour)
	a, _ := svc.Resolve("")
	b, _ := svc.Resolve("")

	width := 225
	require.NoError(t, a.Do(func(s SessionState) error {
		s.Filter.SetWidth(&width)
		return s.Cart.AddItem(priced("1", 180, nil), 1)
	}))

	require.NoError(t, b.Do(func(s SessionState) error {
		assert.Nil(t, s.Filter.Selection().Width)
		assert.True(t, s.Cart.IsEmpty())
		assert.Equal(t, models.StepShipping, s.Checkout.Step())
		return nil
	}))
}

func TestFilterState(t *testing.T) {
	svc, _ := newSessions(t, time.Hour)
	sess, _ := svc.Resolve("")

	brand := "Michelin"
	var state models.FilterStateResponse
	require.NoError(t, sess.Do(func(s SessionState) error {
		RecordRecompute("brand", s.Filter.SetBrand(&brand))
		state = FilterState(s.Filter)
		return nil
	}))

	assert.Equal(t, 1, state.Total)
	require.Len(t, state.Products, 1)
	assert.Equal(t, "225/45R17", state.Products[0].Size)
	assert.Equal(t, []int{225}, state.AvailableOptions.Widths)
	assert.Equal(t, models.VehicleTypes, state.VehicleTypes)
}

package services

import (
	"testing"

	"github.com/houranii/tyreshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	d := Dashboard(seededStore(t), 40)

	assert.Equal(t, 12, d.TotalProducts)
	assert.Equal(t, 14, d.TotalLocations)
	assert.Equal(t, 8, d.TotalCustomers)
	assert.Equal(t, 3, d.TotalOrders)
	assert.Equal(t, 512, d.TotalInventory)
	assert.InDelta(t, 721.4, d.CompletedRevenue, 0.001)
	assert.Equal(t, 1, d.OrdersByStatus[models.OrderProcessing])

	require.Len(t, d.LowStock, 3)
	assert.Equal(t, "8", d.LowStock[0].ID)
	assert.Equal(t, "11", d.LowStock[1].ID)
	assert.Equal(t, "9", d.LowStock[2].ID)
	assert.Equal(t, "Falken Azenis FK510", d.LowStock[0].Name)

	require.Len(t, d.RecentOrders, 3)
	assert.Equal(t, "ORD-7352", d.RecentOrders[0].ID)
}

func TestDashboard_NoLowStockBelowThreshold(t *testing.T) {
	d := Dashboard(seededStore(t), 10)
	assert.Empty(t, d.LowStock)
	assert.NotNil(t, d.LowStock)
}

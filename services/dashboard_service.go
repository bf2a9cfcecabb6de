package services

import (
	"sort"

	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
)

const recentOrdersOnDashboard = 5

// Dashboard summarises the shop for the admin landing page.
func Dashboard(s *store.Store, lowStock int) models.DashboardResponse {
	tyres, _ := s.Tyres.Snapshot()
	orders := s.Orders.List()

	resp := models.DashboardResponse{
		TotalProducts:  len(tyres),
		TotalLocations: s.Locations.Count(),
		TotalCustomers: s.Customers.Count(),
		TotalOrders:    len(orders),
		LowStock:       make([]models.LowStockTyre, 0),
		RecentOrders:   make([]models.OrderHistoryResponse, 0, recentOrdersOnDashboard),
	}

	for _, t := range tyres {
		stock := t.TotalStock()
		resp.TotalInventory += stock
		if stock < lowStock {
			resp.LowStock = append(resp.LowStock, models.LowStockTyre{
				ID:         t.ID,
				Name:       t.Brand + " " + t.Model,
				Size:       t.Size.String(),
				TotalStock: stock,
			})
		}
	}
	sort.SliceStable(resp.LowStock, func(i, j int) bool {
		return resp.LowStock[i].TotalStock < resp.LowStock[j].TotalStock
	})

	stats := OrderStats(orders)
	resp.OrdersByStatus = stats.ByStatus
	resp.CompletedRevenue = stats.Revenue

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	for i := 0; i < len(orders) && i < recentOrdersOnDashboard; i++ {
		resp.RecentOrders = append(resp.RecentOrders, models.NewOrderHistoryResponse(orders[i]))
	}
	return resp
}

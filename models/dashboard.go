package models

type LowStockTyre struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	TotalStock int    `json:"total_stock"`
}

type DashboardResponse struct {
	TotalProducts    int                    `json:"total_products"`
	TotalLocations   int                    `json:"total_locations"`
	TotalCustomers   int                    `json:"total_customers"`
	TotalInventory   int                    `json:"total_inventory"`
	TotalOrders      int                    `json:"total_orders"`
	OrdersByStatus   map[OrderStatus]int    `json:"orders_by_status"`
	CompletedRevenue float64                `json:"completed_revenue"`
	LowStock         []LowStockTyre         `json:"low_stock"`
	RecentOrders     []OrderHistoryResponse `json:"recent_orders"`
}

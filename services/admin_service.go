package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
)

var (
	ErrInvalidSort         = errors.New("invalid sort option")
	ErrInvalidFilter       = errors.New("invalid filter option")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrCancelNotesRequired = errors.New("admin notes are required when cancelling an order")
)

const (
	HighValueSpend  = 2000.0
	RecentOrderDays = 30
	SortAsc         = "asc"
	SortDesc        = "desc"
)

func contains(field, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(field), lowerQuery)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func direction(dir string) (int, error) {
	switch dir {
	case "", SortAsc:
		return 1, nil
	case SortDesc:
		return -1, nil
	}
	return 0, fmt.Errorf("direction %q: %w", dir, ErrInvalidSort)
}

// ════════════════════════════════════════════════════════════
// Products
// ════════════════════════════════════════════════════════════

// ListTyres filters by brand or model and sorts by brand, model or price.
func ListTyres(tyres []models.Tyre, search, sortBy, dir string) ([]models.Tyre, error) {
	mod, err := direction(dir)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Tyre, 0, len(tyres))
	for _, t := range tyres {
		if q == "" || contains(t.Brand, q) || contains(t.Model, q) {
			out = append(out, t)
		}
	}

	var cmp func(a, b models.Tyre) int
	switch sortBy {
	case "", "brand":
		cmp = func(a, b models.Tyre) int { return compareFold(a.Brand, b.Brand) }
	case "model":
		cmp = func(a, b models.Tyre) int { return compareFold(a.Model, b.Model) }
	case "price":
		cmp = func(a, b models.Tyre) int { return compareFloat(a.Price, b.Price) }
	default:
		return nil, fmt.Errorf("sort %q: %w", sortBy, ErrInvalidSort)
	}
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j])*mod < 0 })
	return out, nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TyreStats(tyres []models.Tyre, lowStock int) models.TyreStatsResponse {
	stats := models.TyreStatsResponse{
		TotalProducts:   len(tyres),
		ProductsByBrand: map[string]int{},
	}
	sum := 0.0
	for _, t := range tyres {
		stock := t.TotalStock()
		stats.TotalInventory += stock
		if t.OnSale() {
			stats.OnSaleProducts++
		}
		if stock < lowStock {
			stats.LowStockProducts++
		}
		stats.ProductsByBrand[t.Brand]++
		sum += t.Price
	}
	if len(tyres) > 0 {
		stats.AveragePrice = sum / float64(len(tyres))
	}
	return stats
}

func NewTyreFromRequest(req models.TyreRequest) models.Tyre {
	return models.Tyre{
		Brand:          strings.TrimSpace(req.Brand),
		Model:          strings.TrimSpace(req.Model),
		Size:           req.Size,
		VehicleTypes:   req.VehicleTypes,
		Price:          req.Price,
		SalePrice:      req.SalePrice,
		Image:          req.Image,
		Description:    req.Description,
		Features:       req.Features,
		Specifications: req.Specifications,
		Stock:          req.Stock,
		Reviews:        []models.Review{},
	}
}

// ApplyTyreUpdate copies every field present in req onto t.
func ApplyTyreUpdate(t *models.Tyre, req models.UpdateTyreRequest) {
	if req.Brand != nil {
		t.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		t.Model = strings.TrimSpace(*req.Model)
	}
	if req.Size != nil {
		t.Size = *req.Size
	}
	if req.VehicleTypes != nil {
		t.VehicleTypes = *req.VehicleTypes
	}
	if req.Price != nil {
		t.Price = *req.Price
	}
	if req.ClearSalePrice {
		t.SalePrice = nil
	} else if req.SalePrice != nil {
		sp := *req.SalePrice
		t.SalePrice = &sp
	}
	if req.Image != nil {
		t.Image = *req.Image
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Features != nil {
		t.Features = *req.Features
	}
	if req.Specifications != nil {
		t.Specifications = *req.Specifications
	}
	if req.Stock != nil {
		t.Stock = *req.Stock
	}
}

// ════════════════════════════════════════════════════════════
// Orders
// ════════════════════════════════════════════════════════════

// ListOrders searches id, customer and email, keeps one status when set
// and sorts by date or total. Newest first by default.
func ListOrders(orders []models.Order, search, status, sortBy, dir string) ([]models.Order, error) {
	if dir == "" {
		dir = SortDesc
	}
	mod, err := direction(dir)
	if err != nil {
		return nil, err
	}
	if status != "" && !models.OrderStatus(status).Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidFilter)
	}
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" && !contains(o.ID, q) && !contains(o.CustomerName, q) && !contains(o.Email, q) {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}

	var cmp func(a, b models.Order) int
	switch sortBy {
	case "", "date":
		cmp = func(a, b models.Order) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "total":
		cmp = func(a, b models.Order) int { return compareFloat(a.Total, b.Total) }
	default:
		return nil, fmt.Errorf("sort %q: %w", sortBy, ErrInvalidSort)
	}
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j])*mod < 0 })
	return out, nil
}

// UpdateOrderStatus moves an order to a new status. Cancelling needs a note.
func UpdateOrderStatus(orders *store.OrderStore, id string, req models.UpdateOrderStatusRequest, now time.Time) (models.Order, error) {
	if !req.Status.Valid() {
		return models.Order{}, fmt.Errorf("status %q: %w", req.Status, ErrInvalidStatus)
	}
	notes := ""
	if req.AdminNotes != nil {
		notes = strings.TrimSpace(*req.AdminNotes)
	}
	if req.Status == models.OrderCancelled && notes == "" {
		return models.Order{}, ErrCancelNotesRequired
	}

	return orders.Update(id, func(o *models.Order) error {
		o.Status = req.Status
		if notes != "" {
			o.AdminNotes = &notes
		}
		if req.Status == models.OrderCompleted && o.PaymentStatus == models.PaymentPending {
			o.PaymentStatus = models.PaymentPaid
		}
		o.UpdatedAt = now
		return nil
	})
}

func OrderStats(orders []models.Order) models.OrderStatsResponse {
	stats := models.OrderStatsResponse{
		TotalOrders: len(orders),
		ByStatus:    map[models.OrderStatus]int{},
	}
	completed := 0
	for _, o := range orders {
		stats.ByStatus[o.Status]++
		if o.Status == models.OrderCompleted {
			stats.Revenue += o.Total
			completed++
		}
		if o.PaymentStatus == models.PaymentPending {
			stats.PendingPayments++
		}
	}
	for _, s := range models.OrderStatuses {
		if _, ok := stats.ByStatus[s]; !ok {
			stats.ByStatus[s] = 0
		}
	}
	if completed > 0 {
		stats.AverageOrder = stats.Revenue / float64(completed)
	}
	return stats
}

// ════════════════════════════════════════════════════════════
// Locations
// ════════════════════════════════════════════════════════════

func ListLocations(locs []models.Location, search, sortBy, dir string) ([]models.Location, error) {
	mod, err := direction(dir)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Location, 0, len(locs))
	for _, l := range locs {
		if q == "" || contains(l.Name, q) || contains(l.City, q) || contains(l.Address, q) {
			out = append(out, l)
		}
	}

	var key func(l models.Location) string
	switch sortBy {
	case "", "name":
		key = func(l models.Location) string { return l.Name }
	case "city":
		key = func(l models.Location) string { return l.City }
	default:
		return nil, fmt.Errorf("sort %q: %w", sortBy, ErrInvalidSort)
	}
	sort.SliceStable(out, func(i, j int) bool { return compareFold(key(out[i]), key(out[j]))*mod < 0 })
	return out, nil
}

// DeleteLocation refuses to remove a location that still holds stock.
func DeleteLocation(s *store.Store, id string) error {
	if _, err := s.Locations.Get(id); err != nil {
		return err
	}
	if s.Tyres.StocksLocation(id) {
		return fmt.Errorf("location %s: %w", id, store.ErrLocationInUse)
	}
	return s.Locations.Delete(id)
}

// ════════════════════════════════════════════════════════════
// Customers
// ════════════════════════════════════════════════════════════

// ListCustomers searches full name, email, id and phone, then applies one
// of the all, highValue or recent filters and a named sort.
func ListCustomers(customers []models.Customer, search, filterBy, sortBy string, now time.Time) ([]models.Customer, error) {
	q := strings.ToLower(strings.TrimSpace(search))
	cutoff := now.AddDate(0, 0, -RecentOrderDays)

	var keep func(c models.Customer) bool
	switch filterBy {
	case "", "all":
		keep = func(models.Customer) bool { return true }
	case "highValue":
		keep = func(c models.Customer) bool { return c.TotalSpent > HighValueSpend }
	case "recent":
		keep = func(c models.Customer) bool { return c.LastOrderDate != nil && !c.LastOrderDate.Before(cutoff) }
	default:
		return nil, fmt.Errorf("filter %q: %w", filterBy, ErrInvalidFilter)
	}

	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if q != "" && !contains(c.FullName(), q) && !contains(c.Email, q) && !contains(c.ID, q) && !strings.Contains(c.Phone, q) {
			continue
		}
		if keep(c) {
			out = append(out, c)
		}
	}

	var less func(a, b models.Customer) bool
	switch sortBy {
	case "", "newest":
		less = func(a, b models.Customer) bool { return a.JoinDate.After(b.JoinDate) }
	case "oldest":
		less = func(a, b models.Customer) bool { return a.JoinDate.Before(b.JoinDate) }
	case "nameAsc":
		less = func(a, b models.Customer) bool { return compareFold(a.LastName, b.LastName) < 0 }
	case "nameDesc":
		less = func(a, b models.Customer) bool { return compareFold(a.LastName, b.LastName) > 0 }
	case "mostOrders":
		less = func(a, b models.Customer) bool { return a.TotalOrders > b.TotalOrders }
	case "highestSpend":
		less = func(a, b models.Customer) bool { return a.TotalSpent > b.TotalSpent }
	default:
		return nil, fmt.Errorf("sort %q: %w", sortBy, ErrInvalidSort)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

// NewCustomerFromRequest starts a customer with no orders, joined at now.
func NewCustomerFromRequest(req models.CustomerRequest, now time.Time) models.Customer {
	c := models.Customer{JoinDate: now}
	ApplyCustomerRequest(&c, req)
	return c
}

// ApplyCustomerRequest overwrites the editable fields. Totals and join
// date are left alone.
func ApplyCustomerRequest(c *models.Customer, req models.CustomerRequest) {
	c.FirstName = strings.TrimSpace(req.FirstName)
	c.LastName = strings.TrimSpace(req.LastName)
	c.Email = strings.TrimSpace(req.Email)
	c.Phone = req.Phone
	c.Address = req.Address
	c.City = req.City
	c.State = req.State
	c.ZipCode = req.ZipCode
	c.PreferredLocation = req.PreferredLocation
	c.PaymentMethods = req.PaymentMethods
	c.Notes = req.Notes
}

func CustomerStats(customers []models.Customer, now time.Time) models.CustomerStats {
	stats := models.CustomerStats{TotalCustomers: len(customers)}
	cutoff := now.AddDate(0, 0, -RecentOrderDays)
	orders := 0
	for _, c := range customers {
		if c.TotalSpent > HighValueSpend {
			stats.HighValueCustomers++
		}
		if c.LastOrderDate != nil && !c.LastOrderDate.Before(cutoff) {
			stats.RecentCustomers++
		}
		stats.TotalRevenue += c.TotalSpent
		orders += c.TotalOrders
	}
	if orders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(orders)
	}
	return stats
}

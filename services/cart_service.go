package services

import (
	"errors"
	"fmt"

	"github.com/houranii/tyreshop/metrics"
	"github.com/houranii/tyreshop/models"
)

var (
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrItemNotInCart       = errors.New("item not in cart")
	ErrInvalidServiceType  = errors.New("invalid service type")
	ErrServiceTypeMismatch = errors.New("location does not offer the selected service")
)

// Cart is one visitor's basket. It is not safe for concurrent use; the
// owning visitor session serialises access.
type Cart struct {
	items       []models.CartItem
	serviceType models.ServiceType
	locationID  *string
	total       float64
}

func NewCart() *Cart {
	return &Cart{serviceType: models.ServiceFitting}
}

// AddItem adds quantity units of tyre, merging with an existing line.
func (c *Cart) AddItem(tyre models.Tyre, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	defer c.recalculate("add")
	for i := range c.items {
		if c.items[i].Tyre.ID == tyre.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, models.CartItem{Tyre: tyre, Quantity: quantity})
	return nil
}

func (c *Cart) RemoveItem(tyreID string) error {
	for i := range c.items {
		if c.items[i].Tyre.ID == tyreID {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			c.recalculate("remove")
			return nil
		}
	}
	return fmt.Errorf("tyre %s: %w", tyreID, ErrItemNotInCart)
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
func (c *Cart) UpdateQuantity(tyreID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(tyreID)
	}
	for i := range c.items {
		if c.items[i].Tyre.ID == tyreID {
			c.items[i].Quantity = quantity
			c.recalculate("update")
			return nil
		}
	}
	return fmt.Errorf("tyre %s: %w", tyreID, ErrItemNotInCart)
}

// SetServiceType switches between fitting and pickup and forgets the
// selected location, which may not offer the new service.
func (c *Cart) SetServiceType(st models.ServiceType) error {
	if !st.Valid() {
		return fmt.Errorf("%q: %w", st, ErrInvalidServiceType)
	}
	c.serviceType = st
	c.locationID = nil
	metrics.CartOperations.WithLabelValues("service_type").Inc()
	return nil
}

func (c *Cart) SetLocation(loc models.Location) error {
	if loc.ServiceType != c.serviceType {
		return fmt.Errorf("%s offers %s: %w", loc.Name, loc.ServiceType, ErrServiceTypeMismatch)
	}
	id := loc.ID
	c.locationID = &id
	metrics.CartOperations.WithLabelValues("location").Inc()
	return nil
}

// Clear empties the basket. The service choice and location stay.
func (c *Cart) Clear() {
	c.items = nil
	c.recalculate("clear")
}

func (c *Cart) Items() []models.CartItem {
	return append([]models.CartItem(nil), c.items...)
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) ServiceType() models.ServiceType { return c.serviceType }

func (c *Cart) LocationID() (string, bool) {
	if c.locationID == nil {
		return "", false
	}
	return *c.locationID, true
}

func (c *Cart) Total() float64 { return c.total }

func (c *Cart) recalculate(op string) {
	total := 0.0
	for _, it := range c.items {
		total += it.Subtotal()
	}
	c.total = total
	metrics.CartOperations.WithLabelValues(op).Inc()
}

// Response renders the cart for the API.
func (c *Cart) Response() models.CartResponse {
	items := make([]models.CartItemResponse, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, models.CartItemResponse{
			TyreID:    it.Tyre.ID,
			Tyre:      models.NewStorefrontTyreResponse(it.Tyre),
			Quantity:  it.Quantity,
			UnitPrice: it.Tyre.EffectivePrice(),
			Subtotal:  it.Subtotal(),
		})
	}
	var loc *string
	if c.locationID != nil {
		id := *c.locationID
		loc = &id
	}
	return models.CartResponse{
		Items:              items,
		ItemCount:          c.ItemCount(),
		ServiceType:        c.serviceType,
		SelectedLocationID: loc,
		ServiceFee:         0,
		Total:              c.total,
		ReadyForCheckout:   !c.IsEmpty() && loc != nil,
	}
}

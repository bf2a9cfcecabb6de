package models

import (
	"fmt"
	"time"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

type VehicleType string

const (
	VehicleCar   VehicleType = "Car"
	VehicleSUV   VehicleType = "SUV"
	VehicleTruck VehicleType = "Truck"
)

// VehicleTypes lists every vehicle type in display order.
var VehicleTypes = []VehicleType{VehicleCar, VehicleSUV, VehicleTruck}

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleCar, VehicleSUV, VehicleTruck:
		return true
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Catalog Model
// ═══════════════════════════════════════════════════════════

type TyreSize struct {
	Width   int `json:"width" yaml:"width" validate:"gt=0" binding:"required,gt=0" example:"225"`
	Profile int `json:"profile" yaml:"profile" validate:"gt=0" binding:"required,gt=0" example:"45"`
	RimSize int `json:"rim_size" yaml:"rim_size" validate:"gt=0" binding:"required,gt=0" example:"17"`
}

// String renders the size the way it is printed on a sidewall, e.g. 225/45R17.
func (s TyreSize) String() string {
	return fmt.Sprintf("%d/%dR%d", s.Width, s.Profile, s.RimSize)
}

type Review struct {
	ID       string    `json:"id" yaml:"id" validate:"required"`
	UserID   string    `json:"user_id" yaml:"user_id"`
	UserName string    `json:"user_name" yaml:"user_name"`
	Rating   int       `json:"rating" yaml:"rating" validate:"min=1,max=5"`
	Comment  string    `json:"comment" yaml:"comment"`
	Date     time.Time `json:"date" yaml:"date"`
}

// Tyre is a catalog entry. Records handed out by the store are never
// modified in place; edits publish a replacement record.
type Tyre struct {
	ID             string            `json:"id" yaml:"id" validate:"required"`
	Brand          string            `json:"brand" yaml:"brand" validate:"required"`
	Model          string            `json:"model" yaml:"model" validate:"required"`
	Size           TyreSize          `json:"size" yaml:"size"`
	VehicleTypes   []VehicleType     `json:"vehicle_types" yaml:"vehicle_types" validate:"required,min=1,dive,vehicletype"`
	Price          float64           `json:"price" yaml:"price" validate:"gte=0"`
	SalePrice      *float64          `json:"sale_price,omitempty" yaml:"sale_price,omitempty" validate:"omitempty,gte=0"`
	Image          string            `json:"image" yaml:"image"`
	Description    string            `json:"description" yaml:"description"`
	Features       []string          `json:"features" yaml:"features"`
	Specifications map[string]string `json:"specifications" yaml:"specifications"`
	Stock          map[string]int    `json:"stock" yaml:"stock" validate:"dive,gte=0"`
	Reviews        []Review          `json:"reviews" yaml:"reviews" validate:"dive"`
	AvgRating      float64           `json:"avg_rating" yaml:"avg_rating" validate:"gte=0,lte=5"`
}

// EffectivePrice is the price a customer pays for one unit.
func (t Tyre) EffectivePrice() float64 {
	if t.SalePrice != nil && *t.SalePrice > 0 {
		return *t.SalePrice
	}
	return t.Price
}

func (t Tyre) OnSale() bool {
	return t.SalePrice != nil && *t.SalePrice > 0
}

func (t Tyre) HasVehicleType(v VehicleType) bool {
	for _, vt := range t.VehicleTypes {
		if vt == v {
			return true
		}
	}
	return false
}

func (t Tyre) TotalStock() int {
	total := 0
	for _, n := range t.Stock {
		total += n
	}
	return total
}

// StockedLocations counts locations holding at least one unit.
func (t Tyre) StockedLocations() int {
	n := 0
	for _, count := range t.Stock {
		if count > 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers can build a replacement record
// without touching the published one.
func (t Tyre) Clone() Tyre {
	out := t
	if t.SalePrice != nil {
		sp := *t.SalePrice
		out.SalePrice = &sp
	}
	out.VehicleTypes = append([]VehicleType(nil), t.VehicleTypes...)
	out.Features = append([]string(nil), t.Features...)
	out.Reviews = append([]Review(nil), t.Reviews...)
	if t.Specifications != nil {
		out.Specifications = make(map[string]string, len(t.Specifications))
		for k, v := range t.Specifications {
			out.Specifications[k] = v
		}
	}
	if t.Stock != nil {
		out.Stock = make(map[string]int, len(t.Stock))
		for k, v := range t.Stock {
			out.Stock[k] = v
		}
	}
	return out
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type TyreRequest struct {
	Brand          string            `json:"brand" binding:"required,notblank" example:"Michelin"`
	Model          string            `json:"model" binding:"required,notblank" example:"Pilot Sport 4"`
	Size           TyreSize          `json:"size" binding:"required"`
	VehicleTypes   []VehicleType     `json:"vehicle_types" binding:"required,min=1,dive,vehicletype" example:"Car,SUV"`
	Price          float64           `json:"price" binding:"gte=0" example:"180"`
	SalePrice      *float64          `json:"sale_price" binding:"omitempty,gte=0" example:"160"`
	Image          string            `json:"image"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Stock          map[string]int    `json:"stock" binding:"omitempty,dive,gte=0"`
}

type UpdateTyreRequest struct {
	Brand          *string            `json:"brand" binding:"omitempty,notblank"`
	Model          *string            `json:"model" binding:"omitempty,notblank"`
	Size           *TyreSize          `json:"size"`
	VehicleTypes   *[]VehicleType     `json:"vehicle_types" binding:"omitempty,min=1,dive,vehicletype"`
	Price          *float64           `json:"price" binding:"omitempty,gte=0"`
	SalePrice      *float64           `json:"sale_price" binding:"omitempty,gte=0"`
	ClearSalePrice bool               `json:"clear_sale_price"`
	Image          *string            `json:"image"`
	Description    *string            `json:"description"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
	Stock          *map[string]int    `json:"stock" binding:"omitempty,dive,gte=0"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type StorefrontTyreResponse struct {
	ID           string        `json:"id"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Size         string        `json:"size"`
	VehicleTypes []VehicleType `json:"vehicle_types"`
	Price        float64       `json:"price"`
	SalePrice    *float64      `json:"sale_price,omitempty"`
	Image        string        `json:"image"`
	AvgRating    float64       `json:"avg_rating"`
	InStock      bool          `json:"in_stock"`
}

func NewStorefrontTyreResponse(t Tyre) StorefrontTyreResponse {
	return StorefrontTyreResponse{
		ID:           t.ID,
		Brand:        t.Brand,
		Model:        t.Model,
		Size:         t.Size.String(),
		VehicleTypes: t.VehicleTypes,
		Price:        t.Price,
		SalePrice:    t.SalePrice,
		Image:        t.Image,
		AvgRating:    t.AvgRating,
		InStock:      t.TotalStock() > 0,
	}
}

type LocationStock struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int    `json:"quantity"`
}

type TyreDetailResponse struct {
	Tyre
	StockByLocation  []LocationStock `json:"stock_by_location"`
	StockedLocations int             `json:"stocked_locations"`
}

type TyreStatsResponse struct {
	TotalProducts    int            `json:"total_products"`
	TotalInventory   int            `json:"total_inventory"`
	OnSaleProducts   int            `json:"on_sale_products"`
	AveragePrice     float64        `json:"average_price"`
	ProductsByBrand  map[string]int `json:"products_by_brand"`
	LowStockProducts int            `json:"low_stock_products"`
}

package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// Order represents a placed customer order
type Order struct {
	ID              string        `json:"id" yaml:"id" validate:"required"`
	UserID          string        `json:"user_id,omitempty" yaml:"user_id"`
	CustomerName    string        `json:"customer_name" yaml:"customer_name" validate:"required"`
	Email           string        `json:"email" yaml:"email" validate:"required,email"`
	Phone           string        `json:"phone" yaml:"phone"`
	Address         string        `json:"address" yaml:"address"`
	Items           []OrderItem   `json:"items" yaml:"items" validate:"required,min=1,dive"`
	ServiceType     ServiceType   `json:"service_type" yaml:"service_type" validate:"servicetype"`
	LocationID      string        `json:"location_id,omitempty" yaml:"location_id"`
	LocationName    string        `json:"location_name" yaml:"location_name"`
	Total           float64       `json:"total" yaml:"total" validate:"gte=0"`
	Status          OrderStatus   `json:"status" yaml:"status" validate:"required"`
	PaymentMethod   string        `json:"payment_method,omitempty" yaml:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status" yaml:"payment_status"`
	TrackingNumber  string        `json:"tracking_number,omitempty" yaml:"tracking_number"`
	Notes           string        `json:"notes,omitempty" yaml:"notes"`
	AdminNotes      *string       `json:"admin_notes,omitempty" yaml:"admin_notes"`
	AppointmentDate *time.Time    `json:"appointment_date,omitempty" yaml:"appointment_date"`
	CreatedAt       time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" yaml:"updated_at"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	ID       string  `json:"id" yaml:"id" validate:"required"`
	TyreID   string  `json:"tyre_id,omitempty" yaml:"tyre_id"`
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Quantity int     `json:"quantity" yaml:"quantity" validate:"min=1"`
	Price    float64 `json:"price" yaml:"price" validate:"gte=0"`
	Total    float64 `json:"total" yaml:"total" validate:"gte=0"`
}

// OrderHistoryResponse for list view
type OrderHistoryResponse struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	Email         string        `json:"email"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	ServiceType   ServiceType   `json:"service_type"`
	LocationName  string        `json:"location_name"`
	Total         float64       `json:"total"`
	ItemCount     int           `json:"item_count"`
	CreatedAt     time.Time     `json:"created_at"`
}

func NewOrderHistoryResponse(o Order) OrderHistoryResponse {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return OrderHistoryResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Email:         o.Email,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		ServiceType:   o.ServiceType,
		LocationName:  o.LocationName,
		Total:         o.Total,
		ItemCount:     count,
		CreatedAt:     o.CreatedAt,
	}
}

// UpdateOrderStatusRequest is sent by the admin console
type UpdateOrderStatusRequest struct {
	Status     OrderStatus `json:"status" binding:"required" example:"Processing"`
	AdminNotes *string     `json:"admin_notes,omitempty" example:"Customer called to cancel"`
}

type OrderStatsResponse struct {
	TotalOrders     int                 `json:"total_orders"`
	ByStatus        map[OrderStatus]int `json:"by_status"`
	Revenue         float64             `json:"revenue"`
	AverageOrder    float64             `json:"average_order"`
	PendingPayments int                 `json:"pending_payments"`
}

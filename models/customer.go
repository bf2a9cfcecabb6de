package models

import "time"

// Customer is a back-office customer record.
type Customer struct {
	ID                string     `json:"id" yaml:"id" validate:"required"`
	FirstName         string     `json:"first_name" yaml:"first_name" validate:"required"`
	LastName          string     `json:"last_name" yaml:"last_name" validate:"required"`
	Email             string     `json:"email" yaml:"email" validate:"required,email"`
	Phone             string     `json:"phone" yaml:"phone"`
	Address           string     `json:"address" yaml:"address"`
	City              string     `json:"city" yaml:"city"`
	State             string     `json:"state" yaml:"state"`
	ZipCode           string     `json:"zip_code" yaml:"zip_code"`
	JoinDate          time.Time  `json:"join_date" yaml:"join_date"`
	TotalOrders       int        `json:"total_orders" yaml:"total_orders" validate:"gte=0"`
	TotalSpent        float64    `json:"total_spent" yaml:"total_spent" validate:"gte=0"`
	LastOrderDate     *time.Time `json:"last_order_date,omitempty" yaml:"last_order_date"`
	PreferredLocation string     `json:"preferred_location,omitempty" yaml:"preferred_location"`
	PaymentMethods    []string   `json:"payment_methods,omitempty" yaml:"payment_methods"`
	Notes             string     `json:"notes,omitempty" yaml:"notes"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CustomerRequest is used when admin creates or replaces customer info
type CustomerRequest struct {
	FirstName         string   `json:"first_name" binding:"required,min=1,max=100" example:"Aroha"`
	LastName          string   `json:"last_name" binding:"required,min=1,max=100" example:"Ngata"`
	Email             string   `json:"email" binding:"required,email" example:"aroha@example.com"`
	Phone             string   `json:"phone" binding:"omitempty,max=20" example:"(555) 123-4567"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	ZipCode           string   `json:"zip_code"`
	PreferredLocation string   `json:"preferred_location"`
	PaymentMethods    []string `json:"payment_methods"`
	Notes             string   `json:"notes"`
}

// CustomerStats represents customer dashboard statistics
type CustomerStats struct {
	TotalCustomers     int     `json:"total_customers"`
	HighValueCustomers int     `json:"high_value_customers"` // spent over 2000
	RecentCustomers    int     `json:"recent_customers"`     // ordered in the last 30 days
	TotalRevenue       float64 `json:"total_revenue"`
	AvgOrderValue      float64 `json:"avg_order_value"`
}

package models

import "time"

// ActivityLog represents an admin action log entry
type ActivityLog struct {
	ID           string    `json:"id"`
	AdminID      string    `json:"admin_id"`
	AdminEmail   string    `json:"admin_email"`
	Action       string    `json:"action"`        // created_product, updated_order, deleted_location, etc.
	ResourceType string    `json:"resource_type"` // product, order, location, customer
	ResourceID   string    `json:"resource_id"`
	Status       string    `json:"status"` // success, failed
	StatusCode   int       `json:"status_code"`
	ErrorMessage string    `json:"error_message,omitempty"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	DeviceType   string    `json:"device_type"`
	Browser      string    `json:"browser"`
	OS           string    `json:"os"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActivityFilter narrows an activity listing. Empty fields match everything.
type ActivityFilter struct {
	ResourceType string
	AdminID      string
}

func (f ActivityFilter) Match(l ActivityLog) bool {
	if f.ResourceType != "" && l.ResourceType != f.ResourceType {
		return false
	}
	if f.AdminID != "" && l.AdminID != f.AdminID {
		return false
	}
	return true
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	ResourceTypeProduct  = "product"
	ResourceTypeOrder    = "order"
	ResourceTypeLocation = "location"
	ResourceTypeCustomer = "customer"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)

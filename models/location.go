package models

type ServiceType string

const (
	ServiceFitting ServiceType = "Professional Fitting"
	ServicePickup  ServiceType = "Self-Pickup"
)

func (s ServiceType) Valid() bool {
	return s == ServiceFitting || s == ServicePickup
}

// FeeLabel names the service line on carts and invoices. Both services
// are free.
func (s ServiceType) FeeLabel() string {
	if s == ServicePickup {
		return "Pickup"
	}
	return "Fitting"
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat" binding:"gte=-90,lte=90" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" yaml:"lng" binding:"gte=-180,lte=180" validate:"gte=-180,lte=180"`
}

// Location is a fitting centre or a pickup counter.
type Location struct {
	ID            string            `json:"id" yaml:"id" validate:"required"`
	Name          string            `json:"name" yaml:"name" validate:"required"`
	ServiceType   ServiceType       `json:"service_type" yaml:"service_type" validate:"servicetype"`
	Address       string            `json:"address" yaml:"address" validate:"required"`
	City          string            `json:"city" yaml:"city" validate:"required"`
	State         string            `json:"state" yaml:"state"`
	ZipCode       string            `json:"zip_code" yaml:"zip_code"`
	Phone         string            `json:"phone" yaml:"phone"`
	Email         string            `json:"email" yaml:"email" validate:"omitempty,email"`
	BusinessHours map[string]string `json:"business_hours" yaml:"business_hours"`
	Coordinates   Coordinates       `json:"coordinates" yaml:"coordinates"`
}

type LocationRequest struct {
	Name          string            `json:"name" binding:"required" example:"Hornby Fitting"`
	ServiceType   ServiceType       `json:"service_type" binding:"required,servicetype" example:"Professional Fitting"`
	Address       string            `json:"address" binding:"required" example:"12 Main South Road"`
	City          string            `json:"city" binding:"required" example:"Christchurch"`
	State         string            `json:"state" example:"Canterbury"`
	ZipCode       string            `json:"zip_code" example:"8042"`
	Phone         string            `json:"phone" example:"(03) 555-0000"`
	Email         string            `json:"email" binding:"omitempty,email" example:"hornby@tyrewarehouse.co.nz"`
	BusinessHours map[string]string `json:"business_hours"`
	Coordinates   Coordinates       `json:"coordinates"`
}

func (r LocationRequest) ToLocation(id string) Location {
	return Location{
		ID:            id,
		Name:          r.Name,
		ServiceType:   r.ServiceType,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		Phone:         r.Phone,
		Email:         r.Email,
		BusinessHours: r.BusinessHours,
		Coordinates:   r.Coordinates,
	}
}

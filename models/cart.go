package models

type CartItem struct {
	Tyre     Tyre `json:"tyre"`
	Quantity int  `json:"quantity"`
}

// Subtotal is the line total at the tyre's effective price.
func (i CartItem) Subtotal() float64 {
	return i.Tyre.EffectivePrice() * float64(i.Quantity)
}

type CartItemResponse struct {
	TyreID    string                 `json:"tyre_id"`
	Tyre      StorefrontTyreResponse `json:"tyre"`
	Quantity  int                    `json:"quantity"`
	UnitPrice float64                `json:"unit_price"`
	Subtotal  float64                `json:"subtotal"`
}

type CartResponse struct {
	Items              []CartItemResponse `json:"items"`
	ItemCount          int                `json:"item_count"`
	ServiceType        ServiceType        `json:"service_type"`
	SelectedLocationID *string            `json:"selected_location_id"`
	ServiceFee         float64            `json:"service_fee"`
	Total              float64            `json:"total"`
	ReadyForCheckout   bool               `json:"ready_for_checkout"`
}

type AddToCartRequest struct {
	TyreID   string `json:"tyre_id" binding:"required" example:"1"`
	Quantity int    `json:"quantity" binding:"required,min=1" example:"4"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"2"`
}

type SetServiceTypeRequest struct {
	ServiceType ServiceType `json:"service_type" binding:"required,servicetype" example:"Self-Pickup"`
}

type SetLocationRequest struct {
	LocationID string `json:"location_id" binding:"required" example:"loc1"`
}

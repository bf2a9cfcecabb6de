package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	store_cart "github.com/houranii/tyreshop/controllers/ecommerce/cart_controller"
	store_checkout "github.com/houranii/tyreshop/controllers/ecommerce/checkout_controller"
	store_filter "github.com/houranii/tyreshop/controllers/ecommerce/filter_controller"
	store_location "github.com/houranii/tyreshop/controllers/ecommerce/location_controller"
	store_product "github.com/houranii/tyreshop/controllers/ecommerce/product_controller"
	"github.com/houranii/tyreshop/middleware"
)

// SetupStorefrontRoutes registers the public shop under /store. session
// attaches the visitor session that filters, cart and checkout live in.
func SetupStorefrontRoutes(router *gin.RouterGroup, session gin.HandlerFunc) {
	store := router.Group("/store")

	// Product routes (stateless)
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/featured", store_product.GetFeaturedProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	// Location routes
	locations := store.Group("/locations")
	{
		locations.GET("", store_location.GetLocations)
		locations.GET("/:id", store_location.GetLocationByID)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// ════════════════════════════════════════════════════════════
	// Session Routes
	// ════════════════════════════════════════════════════════════
	visitor := store.Group("")
	visitor.Use(session)

	filters := visitor.Group("/filters")
	{
		filters.GET("", store_filter.GetFilterState)
		filters.POST("/reset", store_filter.ResetFilters)
		filters.PUT("/:facet", store_filter.SetFilterFacet)
		filters.DELETE("/:facet", store_filter.ClearFilterFacet)
	}

	cart := visitor.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.DELETE("", store_cart.ClearCart)
		cart.POST("/items", store_cart.AddToCart)
		cart.PATCH("/items/:tyreId", store_cart.UpdateCartItem)
		cart.DELETE("/items/:tyreId", store_cart.RemoveCartItem)
		cart.PUT("/service-type", store_cart.SetServiceType)
		cart.PUT("/location", store_cart.SetCartLocation)
	}

	checkout := visitor.Group("/checkout")
	checkout.Use(middleware.RequireAuth())
	{
		checkout.GET("", store_checkout.GetCheckout)
		checkout.POST("/shipping", store_checkout.SubmitShipping)
		checkout.POST("/payment", store_checkout.SubmitPayment)
		checkout.POST("/back", store_checkout.CheckoutBack)
		checkout.POST("/place-order", store_checkout.PlaceOrder)
	}
}

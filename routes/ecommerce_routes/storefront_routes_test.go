package ecommerce_routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/ecommerce/auth_controller"
	store_cart "github.com/houranii/tyreshop/controllers/ecommerce/cart_controller"
	store_checkout "github.com/houranii/tyreshop/controllers/ecommerce/checkout_controller"
	store_filter "github.com/houranii/tyreshop/controllers/ecommerce/filter_controller"
	store_location "github.com/houranii/tyreshop/controllers/ecommerce/location_controller"
	store_product "github.com/houranii/tyreshop/controllers/ecommerce/product_controller"
	user_order "github.com/houranii/tyreshop/controllers/ecommerce/user_controller/order_controller"
	"github.com/houranii/tyreshop/fixtures"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"github.com/houranii/tyreshop/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterBindingRules(); err != nil {
		panic(err)
	}
}

type envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

type testServer struct {
	router *gin.Engine
	shop   *store.Store
	auth   *services.AuthService
}

func newServer(t *testing.T) testServer {
	t.Helper()
	d, err := fixtures.LoadAll()
	require.NoError(t, err)
	shop := store.New(d)

	jwtSvc, err := services.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	auth, err := services.NewAuthService(shop.Users, jwtSvc, "password")
	require.NoError(t, err)

	catalog := services.NewCatalogService(shop.Tyres, shop.Locations)
	sessions := services.NewSessionService(catalog, time.Hour, zap.NewNop())

	logger := zap.NewNop()
	store_product.Init(catalog, logger)
	store_filter.Init(catalog, logger)
	store_cart.Init(catalog, shop.Locations, logger)
	store_checkout.Init(services.NewCheckoutService(shop), logger)
	store_location.Init(shop.Locations, logger)
	auth_controller.Init(auth, time.Hour, false, logger)
	user_order.Init(shop.Orders, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	authenticate := middleware.Authenticate(auth, logger)
	SetupAuthRoutes(api, authenticate)
	authed := api.Group("", authenticate)
	SetupStorefrontRoutes(authed, middleware.VisitorSession(sessions, time.Hour, false))
	SetupUserRoutes(authed)

	return testServer{router: r, shop: shop, auth: auth}
}

func (s testServer) token(t *testing.T, email string) string {
	t.Helper()
	_, token, err := s.auth.Login(email, "password")
	require.NoError(t, err)
	return token
}

func (s testServer) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func productIDs(products []models.StorefrontTyreResponse) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// ════════════════════════════════════════════════════════════
// Stateless storefront
// ════════════════════════════════════════════════════════════

func TestStorefrontProducts(t *testing.T) {
	s := newServer(t)

	w, env := s.do(t, http.MethodGet, "/store/products?vehicle_type=Truck&rim_size=16", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.StorefrontListResponse](t, env.Data)
	assert.Equal(t, []string{"3", "11"}, productIDs(list.Products))
	assert.Equal(t, []int{16}, list.AvailableOptions.RimSizes)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)

	w, env = s.do(t, http.MethodGet, "/store/products?limit=5&page=3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[models.StorefrontListResponse](t, env.Data)
	assert.Len(t, list.Products, 2)
	assert.Len(t, list.AvailableOptions.Brands, 12)

	w, env = s.do(t, http.MethodGet, "/store/products?page=922337203685477582", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.StorefrontListResponse](t, env.Data).Products)

	w, _ = s.do(t, http.MethodGet, "/store/products?width=wide", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorefrontProductDetail(t *testing.T) {
	s := newServer(t)

	w, env := s.do(t, http.MethodGet, "/store/products/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[models.TyreDetailResponse](t, env.Data)
	assert.Equal(t, "Michelin", detail.Brand)
	assert.Len(t, detail.StockByLocation, 7)

	w, _ = s.do(t, http.MethodGet, "/store/products/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(t, http.MethodGet, "/store/products/featured", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.StorefrontTyreResponse](t, env.Data), 10)
}

func TestStorefrontLocations(t *testing.T) {
	s := newServer(t)

	w, env := s.do(t, http.MethodGet, "/store/locations?service_type=Self-Pickup", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	locs := decode[[]models.Location](t, env.Data)
	assert.Len(t, locs, 7)
	for _, l := range locs {
		assert.Equal(t, models.ServicePickup, l.ServiceType)
	}

	w, _ = s.do(t, http.MethodGet, "/store/locations?service_type=Delivery", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/store/locations/loc99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ════════════════════════════════════════════════════════════
// Session flows
// ════════════════════════════════════════════════════════════

func TestFilterSession(t *testing.T) {
	s := newServer(t)

	w, env := s.do(t, http.MethodGet, "/store/filters", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, sid)
	assert.Equal(t, 12, decode[models.FilterStateResponse](t, env.Data).Total)

	hdr := map[string]string{middleware.SessionHeader: sid}
	w, env = s.do(t, http.MethodPut, "/store/filters/brand", gin.H{"value": "Michelin"}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[models.FilterStateResponse](t, env.Data)
	assert.Equal(t, 1, state.Total)
	assert.Equal(t, []int{225}, state.AvailableOptions.Widths)

	// state sticks to the session
	_, env = s.do(t, http.MethodGet, "/store/filters", nil, hdr)
	assert.Equal(t, 1, decode[models.FilterStateResponse](t, env.Data).Total)

	// a different visitor is unaffected
	_, env = s.do(t, http.MethodGet, "/store/filters", nil, nil)
	assert.Equal(t, 12, decode[models.FilterStateResponse](t, env.Data).Total)

	w, env = s.do(t, http.MethodPut, "/store/filters/brand", gin.H{"value": ""}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decode[models.FilterStateResponse](t, env.Data).Total)

	w, _ = s.do(t, http.MethodPut, "/store/filters/brand", gin.H{"value": "Michelin"}, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodDelete, "/store/filters/brand", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decode[models.FilterStateResponse](t, env.Data).Total)

	w, _ = s.do(t, http.MethodPut, "/store/filters/colour", gin.H{"value": "red"}, hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = s.do(t, http.MethodPut, "/store/filters/width", gin.H{"value": "-5"}, hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodPost, "/store/filters/reset", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.FilterStateResponse](t, env.Data).Selection.IsEmpty())
}

func TestCartErrors(t *testing.T) {
	s := newServer(t)
	w, _ := s.do(t, http.MethodGet, "/store/cart", nil, nil)
	hdr := map[string]string{middleware.SessionHeader: w.Header().Get(middleware.SessionHeader)}

	w, _ = s.do(t, http.MethodPost, "/store/cart/items", gin.H{"tyre_id": "99", "quantity": 1}, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := s.do(t, http.MethodPost, "/store/cart/items", gin.H{"tyre_id": "1", "quantity": 0}, hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.Error)

	w, _ = s.do(t, http.MethodPatch, "/store/cart/items/5", gin.H{"quantity": 2}, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodPut, "/store/cart/location", gin.H{"location_id": "loc8"}, hdr)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(t, http.MethodPut, "/store/cart/service-type", gin.H{"service_type": "Delivery"}, hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartToOrder(t *testing.T) {
	s := newServer(t)
	w, _ := s.do(t, http.MethodGet, "/store/cart", nil, nil)
	hdr := map[string]string{middleware.SessionHeader: w.Header().Get(middleware.SessionHeader)}

	// Step 1: fill the cart
	w, env := s.do(t, http.MethodPost, "/store/cart/items", gin.H{"tyre_id": "1", "quantity": 2}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(t, http.MethodPost, "/store/cart/items", gin.H{"tyre_id": "1", "quantity": 2}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[models.CartResponse](t, env.Data)
	assert.Equal(t, 4, cart.ItemCount)
	assert.InDelta(t, 720, cart.Total, 0.001)
	assert.False(t, cart.ReadyForCheckout)

	// Step 2: checkout needs a login and a location
	w, _ = s.do(t, http.MethodGet, "/store/checkout", nil, hdr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	hdr["Authorization"] = "Bearer " + s.token(t, "johndoe@example.com")
	w, _ = s.do(t, http.MethodGet, "/store/checkout", nil, hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodPut, "/store/cart/location", gin.H{"location_id": "loc1"}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.CartResponse](t, env.Data).ReadyForCheckout)

	// Step 3: walk the wizard
	w, env = s.do(t, http.MethodGet, "/store/checkout", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[models.CheckoutState](t, env.Data)
	assert.Equal(t, models.StepShipping, state.Step)
	assert.Equal(t, "John Doe", state.Shipping.FullName)

	w, _ = s.do(t, http.MethodPost, "/store/checkout/place-order", nil, hdr)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = s.do(t, http.MethodPost, "/store/checkout/shipping", state.Shipping, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StepPayment, decode[models.CheckoutState](t, env.Data).Step)

	badCard := models.PaymentDetails{Method: models.PayCreditCard, Card: &models.CardDetails{Name: "John Doe", Number: "4242", Expiry: "12/28", CVV: "123"}}
	w, env = s.do(t, http.MethodPost, "/store/checkout/payment", badCard, hdr)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, string(env.Data), "card.number")

	goodCard := models.PaymentDetails{Method: models.PayCreditCard, Card: &models.CardDetails{Name: "John Doe", Number: "4242 4242 4242 4242", Expiry: "12/28", CVV: "123"}}
	w, env = s.do(t, http.MethodPost, "/store/checkout/payment", goodCard, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	state = decode[models.CheckoutState](t, env.Data)
	assert.Equal(t, models.StepConfirmation, state.Step)
	assert.Equal(t, "4242", state.CardLast4)

	// Step 4: place the order
	w, env = s.do(t, http.MethodPost, "/store/checkout/place-order", nil, hdr)
	require.Equal(t, http.StatusCreated, w.Code)
	placed := decode[models.PlaceOrderResponse](t, env.Data)
	assert.Equal(t, "ORD-7353", placed.Order.ID)
	assert.Equal(t, "Credit Card (ending in 4242)", placed.Order.PaymentMethod)
	assert.InDelta(t, 720, placed.Order.Total, 0.001)

	_, env = s.do(t, http.MethodGet, "/store/cart", nil, hdr)
	assert.Empty(t, decode[models.CartResponse](t, env.Data).Items)

	// Step 5: the order shows up in the history
	w, env = s.do(t, http.MethodGet, "/user/orders", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]models.OrderHistoryResponse](t, env.Data)
	require.NotEmpty(t, history)
	assert.Equal(t, "ORD-7353", history[0].ID)

	w, _ = s.do(t, http.MethodGet, "/user/orders/ORD-7353", nil, hdr)
	assert.Equal(t, http.StatusOK, w.Code)

	other := map[string]string{"Authorization": "Bearer " + s.token(t, "janedoe@example.com")}
	w, _ = s.do(t, http.MethodGet, "/user/orders/ORD-7353", nil, other)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ════════════════════════════════════════════════════════════
// Auth
// ════════════════════════════════════════════════════════════

func TestAuthRoutes(t *testing.T) {
	s := newServer(t)

	w, _ := s.do(t, http.MethodPost, "/auth/login", gin.H{"email": "johndoe@example.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, "/auth/login", gin.H{"email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(t, http.MethodPost, "/auth/login", gin.H{"email": "JohnDoe@Example.com", "password": "password"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.AuthResponse](t, env.Data)
	assert.Equal(t, "u1", resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.AuthCookie+"=")

	cookie := map[string]string{"Cookie": middleware.AuthCookie + "=" + resp.Token}
	w, env = s.do(t, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "johndoe@example.com", decode[models.UserResponse](t, env.Data).Email)

	w, _ = s.do(t, http.MethodGet, "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a stale cookie does not block logging in again
	stale := map[string]string{"Cookie": middleware.AuthCookie + "=garbage"}
	w, _ = s.do(t, http.MethodGet, "/auth/me", nil, stale)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(t, http.MethodPost, "/auth/login", gin.H{"email": "johndoe@example.com", "password": "password"}, stale)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestExpiredTokenStillBrowses(t *testing.T) {
	s := newServer(t)

	shortLived, err := services.NewJWTService("test-secret", time.Nanosecond)
	require.NoError(t, err)
	user, err := s.shop.Users.Get("u1")
	require.NoError(t, err)
	expired, err := shortLived.Generate(user)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	stale := map[string]string{"Cookie": middleware.AuthCookie + "=" + expired}
	for _, path := range []string{"/store/products", "/store/filters", "/store/cart"} {
		w, _ := s.do(t, http.MethodGet, path, nil, stale)
		assert.Equal(t, http.StatusOK, w.Code, path)
		cookies := strings.Join(w.Header().Values("Set-Cookie"), "\n")
		assert.Contains(t, cookies, middleware.AuthCookie+"=; Path=/; Max-Age=0", path)
	}

	w, _ := s.do(t, http.MethodPut, "/store/filters/brand", gin.H{"value": "Michelin"}, stale)
	assert.Equal(t, http.StatusOK, w.Code)

	// account pages still need a valid login
	w, _ = s.do(t, http.MethodGet, "/store/checkout", nil, stale)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(t, http.MethodGet, "/user/orders", nil, stale)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

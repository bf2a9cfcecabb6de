package cms_routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/cms/admin_controller"
	"github.com/houranii/tyreshop/controllers/cms/customer_controller"
	"github.com/houranii/tyreshop/controllers/cms/location_controller"
	"github.com/houranii/tyreshop/controllers/cms/order_controller"
	"github.com/houranii/tyreshop/controllers/cms/product_controller"
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
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error"`
}

type adminServer struct {
	router *gin.Engine
	auth   *services.AuthService
}

func newAdminServer(t *testing.T) adminServer {
	t.Helper()
	d, err := fixtures.LoadAll()
	require.NoError(t, err)
	shop := store.New(d)

	jwtSvc, err := services.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	auth, err := services.NewAuthService(shop.Users, jwtSvc, "password")
	require.NoError(t, err)
	services.NewCatalogService(shop.Tyres, shop.Locations)
	activity := services.NewActivityLogService(100, zap.NewNop())

	logger := zap.NewNop()
	admin_controller.Init(shop, activity, 10, logger)
	product_controller.Init(shop, 10, logger)
	order_controller.Init(shop.Orders, logger)
	location_controller.Init(shop, logger)
	customer_controller.Init(shop, logger)

	r := gin.New()
	rg := r.Group("/api/v1", middleware.Authenticate(auth, zap.NewNop()))
	adminGroup := rg.Group("/admin")
	adminGroup.Use(
		middleware.RateLimiter(middleware.NewLocalLimiter(1000, time.Minute), logger),
		middleware.RequireAdmin(logger),
		middleware.ActivityLogging(activity),
	)
	SetupAdminRoutes(adminGroup)
	SetupProductRoutes(adminGroup)
	SetupOrderRoutes(adminGroup)
	SetupLocationRoutes(adminGroup)
	SetupCustomerRoutes(adminGroup)

	return adminServer{router: r, auth: auth}
}

func (s adminServer) bearer(t *testing.T, email string) string {
	t.Helper()
	_, token, err := s.auth.Login(email, "password")
	require.NoError(t, err)
	return "Bearer " + token
}

func (s adminServer) do(t *testing.T, method, path, auth string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1/admin"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestAdminAccess(t *testing.T) {
	s := newAdminServer(t)

	w, _ := s.do(t, http.MethodGet, "/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodGet, "/dashboard", s.bearer(t, "johndoe@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(t, http.MethodGet, "/dashboard", s.bearer(t, "admin@tirestore.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash models.DashboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, 12, dash.TotalProducts)
	assert.Equal(t, 14, dash.TotalLocations)
	assert.Equal(t, 3, dash.TotalOrders)
	assert.Len(t, dash.RecentOrders, 3)
}

func TestAdminProductLifecycleIsLogged(t *testing.T) {
	s := newAdminServer(t)
	admin := s.bearer(t, "admin@tirestore.com")

	w, _ := s.do(t, http.MethodPost, "/products", admin, gin.H{"brand": "Hankook"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := gin.H{
		"brand":         "Hankook",
		"model":         "Ventus S1 evo3",
		"size":          gin.H{"width": 225, "profile": 40, "rim_size": 18},
		"vehicle_types": []string{"Car"},
		"price":         165,
		"stock":         gin.H{"loc99": 4},
	}
	w, env := s.do(t, http.MethodPost, "/products", admin, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(env.Data), "stock.loc99")

	req["stock"] = gin.H{"loc1": 4}
	w, env = s.do(t, http.MethodPost, "/products", admin, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Tyre
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Hankook", created.Brand)

	w, env = s.do(t, http.MethodPatch, "/products/"+created.ID, admin, gin.H{"brand": "  ", "model": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(env.Data), `"brand":"Must not be blank"`)
	assert.Contains(t, string(env.Data), `"model":"Must not be blank"`)

	w, env = s.do(t, http.MethodPatch, "/products/"+created.ID, admin, gin.H{"price": 150})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Tyre
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Hankook", updated.Brand)

	w, _ = s.do(t, http.MethodDelete, "/products/"+created.ID, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodGet, "/products/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(t, http.MethodGet, "/activity?resource_type=product", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []models.ActivityLog
	require.NoError(t, json.Unmarshal(env.Data, &logs))

	// two failed creates, create, failed update, update and delete, newest first
	require.Len(t, logs, 6)
	assert.Equal(t, "deleted_product", logs[0].Action)
	assert.Equal(t, created.ID, logs[0].ResourceID)
	assert.Equal(t, models.StatusFailed, logs[2].Status)
	assert.Equal(t, "created_product", logs[3].Action)
	assert.Equal(t, created.ID, logs[3].ResourceID)
	assert.Equal(t, models.StatusSuccess, logs[3].Status)
	assert.Equal(t, models.StatusFailed, logs[5].Status)
	assert.Equal(t, "admin@tirestore.com", logs[0].AdminEmail)

	// reads are not logged
	w, env = s.do(t, http.MethodGet, "/activity/me", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	assert.Len(t, logs, 6)
}

func TestAdminLocations(t *testing.T) {
	s := newAdminServer(t)
	admin := s.bearer(t, "admin@tirestore.com")

	w, _ := s.do(t, http.MethodDelete, "/locations/loc1", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/locations/loc99", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOrders(t *testing.T) {
	s := newAdminServer(t)
	admin := s.bearer(t, "admin@tirestore.com")

	w, _ := s.do(t, http.MethodGet, "/orders?status=Lost", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPatch, "/orders/ORD-7351/status", admin, gin.H{"status": "Cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(t, http.MethodPatch, "/orders/ORD-7351/status", admin,
		gin.H{"status": "Cancelled", "admin_notes": "Customer called to cancel"})
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, models.OrderCancelled, order.Status)
	require.NotNil(t, order.AdminNotes)

	w, _ = s.do(t, http.MethodPatch, "/orders/ORD-0000/status", admin, gin.H{"status": "Completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, "/orders/ORD-7352/invoice", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-ORD-7352.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

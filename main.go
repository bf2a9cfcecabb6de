// @title Tyre Warehouse API
// @version 1.0
// @description Tyre storefront filters, cart, checkout and the back office
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/config"
	admin_controller "github.com/houranii/tyreshop/controllers/cms/admin_controller"
	cms_customer "github.com/houranii/tyreshop/controllers/cms/customer_controller"
	cms_location "github.com/houranii/tyreshop/controllers/cms/location_controller"
	cms_order "github.com/houranii/tyreshop/controllers/cms/order_controller"
	cms_product "github.com/houranii/tyreshop/controllers/cms/product_controller"
	"github.com/houranii/tyreshop/controllers/ecommerce/auth_controller"
	store_cart "github.com/houranii/tyreshop/controllers/ecommerce/cart_controller"
	store_checkout "github.com/houranii/tyreshop/controllers/ecommerce/checkout_controller"
	store_filter "github.com/houranii/tyreshop/controllers/ecommerce/filter_controller"
	store_location "github.com/houranii/tyreshop/controllers/ecommerce/location_controller"
	store_product "github.com/houranii/tyreshop/controllers/ecommerce/product_controller"
	user_order "github.com/houranii/tyreshop/controllers/ecommerce/user_controller/order_controller"
	_ "github.com/houranii/tyreshop/docs"
	"github.com/houranii/tyreshop/fixtures"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/routes/cms_routes"
	"github.com/houranii/tyreshop/routes/ecommerce_routes"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"github.com/houranii/tyreshop/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	sessionSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, logger *zap.Logger) error {
	if err := utils.RegisterBindingRules(); err != nil {
		return err
	}

	// ════════════════════════════════════════════════════════════
	// Data and services
	// ════════════════════════════════════════════════════════════
	data, err := fixtures.LoadAll()
	if err != nil {
		return err
	}
	shop := store.New(data)
	logger.Info("✅ Fixtures loaded",
		zap.Int("tyres", len(data.Tyres)),
		zap.Int("locations", len(data.Locations)),
		zap.Int("orders", len(data.Orders)),
	)

	jwtSvc, err := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return err
	}
	auth, err := services.NewAuthService(shop.Users, jwtSvc, cfg.DemoPassword)
	if err != nil {
		return err
	}
	catalog := services.NewCatalogService(shop.Tyres, shop.Locations)
	sessions := services.NewSessionService(catalog, cfg.SessionTTL, logger)
	checkout := services.NewCheckoutService(shop)
	activity := services.NewActivityLogService(services.DefaultActivityCapacity, logger)

	var limiter middleware.Limiter = middleware.NewLocalLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	rdb, err := config.ConnectRedis(cfg.RedisURL, logger)
	if err != nil {
		logger.Warn("[redis] unavailable, using in-process rate limiting", zap.Error(err))
	} else if rdb != nil {
		defer func() { _ = rdb.Close() }()
		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	// ════════════════════════════════════════════════════════════
	// Controllers
	// ════════════════════════════════════════════════════════════
	store_product.Init(catalog, logger)
	store_filter.Init(catalog, logger)
	store_cart.Init(catalog, shop.Locations, logger)
	store_checkout.Init(checkout, logger)
	store_location.Init(shop.Locations, logger)
	auth_controller.Init(auth, cfg.JWTExpiry, cfg.IsProduction(), logger)
	user_order.Init(shop.Orders, logger)

	cms_product.Init(shop, cfg.LowStockThreshold, logger)
	cms_order.Init(shop.Orders, logger)
	cms_location.Init(shop, logger)
	cms_customer.Init(shop, logger)
	admin_controller.Init(shop, activity, cfg.LowStockThreshold, logger)

	// ════════════════════════════════════════════════════════════
	// Router
	// ════════════════════════════════════════════════════════════
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", middleware.SessionHeader},
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	authenticate := middleware.Authenticate(auth, logger)
	ecommerce_routes.SetupAuthRoutes(api, authenticate)

	authed := api.Group("")
	authed.Use(authenticate)

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(authed, middleware.VisitorSession(sessions, cfg.SessionTTL, cfg.IsProduction()))
	ecommerce_routes.SetupUserRoutes(authed)

	// Back office
	adminGroup := authed.Group("/admin")
	adminGroup.Use(
		middleware.RateLimiter(limiter, logger),
		middleware.RequireAdmin(logger),
		middleware.ActivityLogging(activity),
	)
	cms_routes.SetupAdminRoutes(adminGroup)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	cms_routes.SetupLocationRoutes(adminGroup)
	cms_routes.SetupCustomerRoutes(adminGroup)

	// ════════════════════════════════════════════════════════════
	// Serve
	// ════════════════════════════════════════════════════════════
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, sessionSweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

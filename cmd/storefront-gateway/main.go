package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/backend"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/cache"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/config"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/favorites"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/health"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/pricing"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/session"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup (optional)
	if cfg.Telemetry.OTLPEndpoint != "" {
		shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
		if err != nil {
			slog.Error("❌ Error setting up tracing", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTracing(flushCtx); err != nil {
				slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
			}
		}()
	}

	// Redis setup
	redisClient := cache.NewRedisClient(&cfg.RedisConnect)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := redisCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	// Backend client
	backendClient := backend.New(&cfg.Backend)

	jwtKey := []byte(cfg.Security.JWTKey)
	shippingPolicy := pricing.PolicyFromConfig(&cfg.Shipping)
	cartService := service.NewCartService(backendClient, shippingPolicy)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutService := service.NewCheckoutService(backendClient, backendClient)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	catalogService := service.NewCatalogService(backendClient, redisCache, &cfg.Cache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	postService := service.NewPostService(backendClient, redisCache, &cfg.Cache)
	postHandler := handlers.NewPostHandler(postService)
	favoritesHandler := handlers.NewFavoritesHandler(favorites.NewToggler(backendClient))
	dashboardService := service.NewDashboardService(backendClient)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	sessionMiddleware := middleware.NewSessionMiddleware(session.NewManager(jwtKey))

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		BackendBaseURL: cfg.Backend.BaseURL,
		HTTPClient:     &http.Client{Timeout: 5 * time.Second},
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("gateway initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/search", catalogHandler.SearchProducts())
	routerMux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/banners", catalogHandler.ListBanners())
	routerMux.HandleFunc("GET /api/v1/posts", postHandler.ListPosts())
	routerMux.HandleFunc("GET /api/v1/posts/{slug}", postHandler.GetPost())
	routerMux.HandleFunc("GET /api/v1/cart", sessionMiddleware.RequireUser(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", sessionMiddleware.RequireUser(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", sessionMiddleware.RequireUser(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", sessionMiddleware.RequireUser(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/checkout", sessionMiddleware.RequireUser(checkoutHandler.Submit()))
	routerMux.HandleFunc("GET /api/v1/orders", sessionMiddleware.RequireUser(checkoutHandler.ListOrders()))
	routerMux.HandleFunc("POST /api/v1/favorites/{kind}/{id}", sessionMiddleware.RequireUser(favoritesHandler.Toggle()))
	routerMux.HandleFunc("GET /api/v1/dashboard/summary", sessionMiddleware.RequireAdmin(dashboardHandler.Summary()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = sessionMiddleware.Attach(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront-gateway")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}

package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/adapters/http/controllers"
	"github.com/medisupply/medisupply/internal/adapters/http/middleware"
)

func listenAndServe(ctx context.Context, cfg config.HTTPConfig, setup func(*gin.Engine)) error {
	engine := gin.Default()
	setup(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.BindInterface, cfg.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ProductsRouter serves the Products service surface.
type ProductsRouter struct {
	healthController      *controllers.HealthController
	productController     *controllers.ProductController
	productTypeController *controllers.ProductTypeController
	rateLimiter           middleware.RateLimiter
}

func NewProductsRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	productTypeController *controllers.ProductTypeController,
	rateLimiter middleware.RateLimiter,
) *ProductsRouter {
	return &ProductsRouter{
		healthController:      healthController,
		productController:     productController,
		productTypeController: productTypeController,
		rateLimiter:           rateLimiter,
	}
}

func (r *ProductsRouter) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/products", middleware.RateLimit(rl, 30, 1*time.Minute), r.productController.CreateProduct)
		v1Group.PUT("/products/:id", middleware.RateLimit(rl, 30, 1*time.Minute), r.productController.UpdateProduct)
		v1Group.PATCH("/products/:id/stock", middleware.RateLimit(rl, 60, 1*time.Minute), r.productController.UpdateStock)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetProductInfo)
		v1Group.GET("/products/:id/detail", r.productController.GetProductDetail)

		v1Group.POST("/product-types", middleware.RateLimit(rl, 30, 1*time.Minute), r.productTypeController.CreateProductType)
		v1Group.GET("/product-types", r.productTypeController.GetAll)
		v1Group.GET("/product-types/:id/products", r.productTypeController.GetProducts)
	}
}

func (r *ProductsRouter) ListenAndServe(ctx context.Context, cfg config.HTTPConfig) error {
	return listenAndServe(ctx, cfg, r.SetupRoutes)
}

// OrdersRouter serves the Orders service surface.
type OrdersRouter struct {
	healthController *controllers.HealthController
	orderController  *controllers.OrderController
	rateLimiter      middleware.RateLimiter
}

func NewOrdersRouter(
	healthController *controllers.HealthController,
	orderController *controllers.OrderController,
	rateLimiter middleware.RateLimiter,
) *OrdersRouter {
	return &OrdersRouter{
		healthController: healthController,
		orderController:  orderController,
		rateLimiter:      rateLimiter,
	}
}

func (r *OrdersRouter) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/orders", middleware.RateLimit(rl, 15, 1*time.Minute), r.orderController.CreateOrder)
		v1Group.GET("/orders", r.orderController.GetAll)
		v1Group.GET("/orders/:id", r.orderController.GetOrderByID)
	}
}

func (r *OrdersRouter) ListenAndServe(ctx context.Context, cfg config.HTTPConfig) error {
	return listenAndServe(ctx, cfg, r.SetupRoutes)
}

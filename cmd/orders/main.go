package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/adapters/http"
	"github.com/medisupply/medisupply/internal/adapters/http/controllers"
	"github.com/medisupply/medisupply/internal/adapters/mongo"
	"github.com/medisupply/medisupply/internal/adapters/mongo/repository"
	"github.com/medisupply/medisupply/internal/adapters/productsclient"
	"github.com/medisupply/medisupply/internal/adapters/rabbitmq"
	"github.com/medisupply/medisupply/internal/adapters/redis"
	"github.com/medisupply/medisupply/internal/core/dispatch"
	"github.com/medisupply/medisupply/internal/core/events"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/service"
)

// @title       MediSupply Orders API
// @version     1.0
// @description Order management service

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/orders/main.go -o ../../docs/orders --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig("orders")
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{
		"write_database": cfg.Mongo.WriteDatabase,
		"read_database":  cfg.Mongo.ReadDatabase,
	})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// dual stores and repositories
	writeDB := mongoClient.Database(cfg.Mongo.WriteDatabase)
	readDB := mongoClient.Database(cfg.Mongo.ReadDatabase)
	orderRepository := repository.NewOrderRepository(writeDB, readDB)
	orderViewRepository := repository.NewOrderViewRepository(readDB)

	// rate limiter
	rateLimiter := redis.NewRateLimiter(redisClient)

	// products lookup client
	productsClient := productsclient.NewClient(cfg.ProductsClient)

	// event dispatcher with the broker as publisher
	dispatcher := events.NewDispatcher()
	dispatcher.RegisterPublisher(broker)

	// services
	orderService := service.NewOrderService(orderRepository, orderViewRepository, productsClient, dispatcher)

	// buses and explicit handler wiring
	commandBus := dispatch.NewCommandBus()
	queryBus := dispatch.NewQueryBus()
	service.RegisterOrderHandlers(commandBus, queryBus, orderService)

	// controllers
	orderController := controllers.NewOrderController(commandBus, queryBus)
	healthController := controllers.NewHealthController(controllers.StoreInfo{
		Mode:       "dual",
		CommandsDB: cfg.Mongo.WriteDatabase,
		QueriesDB:  cfg.Mongo.ReadDatabase,
	}, []controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewOrdersRouter(healthController, orderController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}

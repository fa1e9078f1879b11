package config

import (
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	WriteDatabase          string
	ReadDatabase           string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	URL        string
	Exchange   string
	MaxRetries int
	RetryDelay time.Duration
	// Queue is the consumer queue of this service; empty disables consuming.
	Queue    string
	Prefetch int
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type ProductsClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Mongo          MongoConfig
	Redis          RedisConfig
	RabbitMQ       RabbitMQConfig
	HTTP           HTTPConfig
	ProductsClient ProductsClientConfig
	Logger         LoggerConfig
}

// NewConfig reads the environment once at startup. The service name doubles
// as the default database prefix and logger identity, so both binaries share
// this loader.
func NewConfig(serviceName string) *Config {
	_ = godotenv.Load()
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			WriteDatabase:          getStringEnv("MONGO_WRITE_DATABASE", serviceName+"_command"),
			ReadDatabase:           getStringEnv("MONGO_READ_DATABASE", serviceName+"_query"),
			Timeout:                time.Duration(getIntEnv("MONGO_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
		},
		Redis: RedisConfig{
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			Exchange:   getStringEnv("RABBITMQ_EXCHANGE", "medisupply.events"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			Queue:      getStringEnv("RABBITMQ_QUEUE", ""),
			Prefetch:   getIntEnv("RABBITMQ_PREFETCH", 10),
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		ProductsClient: ProductsClientConfig{
			BaseURL: getStringEnv("PRODUCTS_SERVICE_URL", "http://localhost:8081"),
			Timeout: time.Duration(getIntEnv("PRODUCTS_SERVICE_TIMEOUT_MS", 3000)) * time.Millisecond,
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", serviceName),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}

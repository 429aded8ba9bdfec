package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	Port          string
	StorageDriver string

	AWSRegion        string
	DynamoDBEndpoint string
	Tables           Tables

	JWTSecret string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

type Tables struct {
	ServiceRequests string
	Wallets         string
	Transactions    string
	TechnicianStats string
	Events          string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:             getenvDefault("PORT", "8080"),
		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			ServiceRequests: getenvDefault("SERVICE_REQUESTS_TABLE", "service_requests"),
			Wallets:         getenvDefault("WALLETS_TABLE", "wallets"),
			Transactions:    getenvDefault("WALLET_TRANSACTIONS_TABLE", "wallet_transactions"),
			TechnicianStats: getenvDefault("TECHNICIAN_STATS_TABLE", "technician_stats"),
			Events:          getenvDefault("LIFECYCLE_EVENTS_TABLE", "lifecycle_events"),
		},
		JWTSecret:              os.Getenv("JWT_SECRET"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     parseBool(os.Getenv("PAYMENT_GATEWAY_MOCK")) || parseBool(os.Getenv("MERCADOPAGO_MOCK")),
		CORSAllowedOrigins:     splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
		LogFormat:              getenvDefault("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getenvDefault("RATE_LIMIT_RPS", "50"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getenvDefault("RATE_LIMIT_BURST", "100")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getenvDefault("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", cfg.StorageDriver)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port              string
	LogLevel          string
	DataFile          string
	ShippingFlatRate  string
	CatalogServiceURL string
	RabbitMQURL       string
	RabbitMQQueue     string
	ChannelPoolSize   int
}

func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DataFile:          getEnv("DATA_FILE", "orders.json"),
		ShippingFlatRate:  getEnv("SHIPPING_FLAT_RATE", "5.00"),
		CatalogServiceURL: getEnv("CATALOG_SERVICE_URL", ""),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:     getEnv("RABBITMQ_QUEUE", "fulfillment_orders"),
		ChannelPoolSize:   getEnvAsInt("CHANNEL_POOL_SIZE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	StoreDriver     string
	StorePath       string
	MongoURI        string
	MongoDB         string
	MongoCollection string
	PageSize        int
	CacheTTL        time.Duration
	LogLevel        string
	LogFile         string
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		StoreDriver:     getEnv("STORE_DRIVER", "bolt"),
		StorePath:       getEnv("STORE_PATH", "catalog.db"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "productCatalog"),
		MongoCollection: getEnv("MONGO_COLLECTION", "kv"),
		PageSize:        getEnvInt("PAGE_SIZE", 12),
		CacheTTL:        getEnvDuration("CACHE_TTL", 2*time.Minute),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
}

// IsProduction indica si corre en producción (logs JSON, gin en release)
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Printf("⚠️ Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string

	// AutoApproveListings skips moderation: new listings go live
	// immediately instead of starting in pending.
	AutoApproveListings bool

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		FirebaseProject:     getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:      getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:       getEnv("STORAGE_BUCKET", ""),
		AutoApproveListings: getEnvAsBool("AUTO_APPROVE_LISTINGS", true),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		CacheTTL:            time.Duration(getEnvAsInt64("CACHE_TTL_SECONDS", 30)) * time.Second,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

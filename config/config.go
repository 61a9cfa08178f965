package config

import "os"

// Config holds all configuration for the service.
type Config struct {
	Port     string
	Env      string // development or production
	MongoURL string
	MongoDB  string
	RedisURL string // empty disables the devotional cache
}

// Load reads configuration from the environment with sensible
// defaults. A .env file, if present, is loaded by main before this
// runs.
func Load() Config {
	return Config{
		Port:     getEnv("PORT", "8000"),
		Env:      getEnv("APP_ENV", "development"),
		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "sanctuary"),
		RedisURL: os.Getenv("REDIS_URL"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

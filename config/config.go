package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings. Required values abort
// startup when missing; the Redis block is declared for parity with the
// deployment environment but is not consumed by the request path.
type Config struct {
	ServerPort    int
	MongoURI      string
	JWTSecret     string
	NodeEnv       string
	SecretKeyOne  string
	SecretKeyTwo  string
	ClientURL     string
	RedisHost     string
	RedisPort     int
	RedisPassword string
}

var cfg *Config

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	godotenv.Load(".env")

	var missing []string
	required := func(key string) string {
		value, exists := os.LookupEnv(key)
		if !exists || value == "" {
			missing = append(missing, key)
		}
		return value
	}

	c := &Config{
		ServerPort:    getEnvInt("SERVER_PORT", 5000),
		MongoURI:      required("MONGO_URI"),
		JWTSecret:     required("JWT_SECRET"),
		NodeEnv:       strings.ToLower(os.Getenv("NODE_ENV")),
		SecretKeyOne:  required("SECRET_KEY_ONE"),
		SecretKeyTwo:  required("SECRET_KEY_TWO"),
		ClientURL:     required("CLIENT_URL"),
		RedisHost:     required("REDIS_HOST"),
		RedisPort:     getEnvInt("REDIS_PORT", 6379),
		RedisPassword: required("REDIS_PASSWORD"),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing or invalid config value: %s", strings.Join(missing, ", "))
	}

	cfg = c
	return c, nil
}

// Get returns the config loaded by the last successful Load.
func Get() *Config {
	return cfg
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

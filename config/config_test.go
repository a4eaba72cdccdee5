package config

import (
	"os"
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SECRET_KEY_ONE", "one")
	t.Setenv("SECRET_KEY_TWO", "two")
	t.Setenv("CLIENT_URL", "http://localhost:3000")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PASSWORD", "redis-pass")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("REDIS_PORT")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ServerPort != 5000 {
		t.Errorf("ServerPort = %d, want 5000", c.ServerPort)
	}
	if c.RedisPort != 6379 {
		t.Errorf("RedisPort = %d, want 6379", c.RedisPort)
	}
	if Get() != c {
		t.Error("Get() did not return the loaded config")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("NODE_ENV", "Production")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ServerPort != 8081 {
		t.Errorf("ServerPort = %d, want 8081", c.ServerPort)
	}
	if c.NodeEnv != "production" {
		t.Errorf("NodeEnv = %q, want lowercased", c.NodeEnv)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("MONGO_URI")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MONGO_URI")
	}
	if !strings.Contains(err.Error(), "MONGO_URI") {
		t.Errorf("error %q does not name the missing key", err)
	}
}

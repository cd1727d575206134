package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
}

type AuthConfig struct {
	// Sessions maps session tokens to display names, seeded into the
	// in-memory account directory at startup. Format:
	// AUTH_SESSIONS="token1:alice,token2:bob"
	Sessions map[string]string
}

func NewConfig() *Config {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", ""),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			StaticDir:    getEnv("STATIC_DIR", "./static"),
		},
		Auth: AuthConfig{
			Sessions: parseSessions(getEnv("AUTH_SESSIONS", "")),
		},
	}
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func parseSessions(raw string) map[string]string {
	sessions := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		token, username, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || token == "" || username == "" {
			continue
		}
		sessions[token] = username
	}
	return sessions
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

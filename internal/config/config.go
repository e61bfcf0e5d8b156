// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Config holds the runtime settings for the service. Every field maps to an
// environment variable; defaults make the binary runnable with no
// configuration at all, listening on all interfaces on port 8080.
type Config struct {
	Host     string // HOST: bind address, empty means all interfaces
	Port     string // PORT: TCP port to listen on
	Greeting string // GREETING: overrides the root greeting message, empty means default
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Host:     os.Getenv("HOST"),
		Port:     getenv("PORT", defaultPort),
		Greeting: os.Getenv("GREETING"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the host:port listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("invalid PORT %q: out of range", c.Port)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

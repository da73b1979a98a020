package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = 8000

// Config holds the runtime configuration read from the environment.
type Config struct {
	// Port is the TCP port the HTTP server binds on.
	Port int
}

// Load reads configuration from environment variables.
// PORT must parse as a base-10 integer in 1..65535; any other value is a
// startup error so the process can refuse to start before binding.
func Load() (Config, error) {
	raw := getenv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(raw)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: not an integer", raw)
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d: out of range 1..65535", port)
	}
	return Config{Port: port}, nil
}

// Addr returns the listen address on all interfaces for the configured port.
func (c Config) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

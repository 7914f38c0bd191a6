package api

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Port is the TCP port the API server listens on, as a decimal string.
	Port string
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	return Config{Port: port}
}

// Validate ensures the port parses as a usable TCP port.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("api: PORT %q is not a number: %w", c.Port, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("api: PORT %d is out of range", port)
	}
	return nil
}

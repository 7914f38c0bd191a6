package metrics

import "os"

type Config struct {
	// Address is the listen address of the /metrics scrape server.
	Address string

	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors registers the Go runtime, process, and build
	// info collectors alongside the service metrics.
	EnableDefaultCollectors bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	address := os.Getenv("METRICS_ADDRESS")
	if address == "" {
		address = ":9090"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "codebert-server"
	}

	return Config{
		Address:                 address,
		ServiceName:             serviceName,
		EnableDefaultCollectors: os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS") != "false",
	}
}

package tracer

import "os"

type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string

	// AppEnv tags spans with the deployment environment.
	AppEnv string

	// EnableExport turns on the OTLP/HTTP exporter. Span context is
	// propagated either way; only export is gated.
	EnableExport bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "codebert-server"
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	return Config{
		ServiceName:  serviceName,
		AppEnv:       appEnv,
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}

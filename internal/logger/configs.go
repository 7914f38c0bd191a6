package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Level controls the minimum level that is emitted.
	// One of the level constants above; anything else falls back to info.
	Level string

	// ServiceName appears as the "service" field on every log entry.
	ServiceName string

	// EnableTracing makes the *WithContext methods attach trace_id and
	// span_id fields extracted from the request context.
	EnableTracing bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	level := os.Getenv("ZAP_LOGGER_LEVEL")
	if level == "" {
		level = Info
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "codebert-server"
	}

	return Config{
		Level:         level,
		ServiceName:   serviceName,
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") != "false",
	}
}

// Package logger provides structured logging for the embedding service.
//
// It wraps Uber's Zap logger behind a small, stable API: leveled methods that
// accept a message, an optional error, and optional structured field maps.
// Output is JSON on stderr with ISO8601 timestamps, and every entry carries
// the process id and service name so log collectors can aggregate across
// instances.
//
// # Usage
//
//	log := logger.NewLoggerClient(logger.NewConfig())
//	log.Info("model loaded", nil, map[string]interface{}{
//		"model":  "microsoft/codebert-base",
//		"device": "cpu",
//	})
//
// When tracing integration is enabled, the *WithContext variants extract the
// active OpenTelemetry span from the context and add trace_id and span_id
// fields, correlating log entries with distributed traces:
//
//	log.InfoWithContext(ctx, "embedding generated", nil, map[string]interface{}{
//		"dimension": 768,
//	})
//
// # Fx integration
//
// FXModule provides the logger to an Fx application and registers a shutdown
// hook that flushes buffered entries:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(logger.NewConfig),
//		// other modules...
//	)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL        log level: debug, info, warning, error (default info)
//	LOGGER_ENABLE_TRACING   attach trace/span ids from context (default true)
//	SERVICE_NAME            service label on every entry (default codebert-server)
//
// All methods are safe for concurrent use.
package logger

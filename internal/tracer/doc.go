// Package tracer provides distributed tracing for the embedding service via
// OpenTelemetry.
//
// The Tracer wraps an OpenTelemetry TracerProvider and exposes a small API
// for creating spans, recording errors, attaching attributes, and moving
// trace context across service boundaries (W3C Trace Context headers).
//
// Export is optional: when enabled, spans are batched to an OTLP/HTTP
// collector; otherwise span context still propagates (so logs keep their
// trace ids) but nothing leaves the process. The OTLP endpoint and headers
// come from the standard OTEL_EXPORTER_OTLP_* environment variables read by
// the exporter itself.
//
// # Usage
//
//	trc := tracer.NewClient(tracer.NewConfig(), log)
//
//	ctx, span := trc.StartSpan(ctx, "embed")
//	defer span.End()
//
//	if err != nil {
//		trc.RecordErrorOnSpan(span, err)
//	}
//
// # Configuration
//
//	SERVICE_NAME           resource service.name (default codebert-server)
//	APP_ENV                deployment environment attribute (default development)
//	TRACER_ENABLE_EXPORT   enable the OTLP/HTTP exporter (default false)
//
// The Tracer is safe for concurrent use.
package tracer

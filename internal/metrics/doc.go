// Package metrics provides Prometheus-based monitoring for the embedding
// service.
//
// Each process owns a dedicated Prometheus registry, wrapped so every metric
// carries a constant service label, and a standalone HTTP server exposing
// /metrics for scraping. Keeping the scrape server separate from the API
// server means the inference port never serves operational traffic.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: the contract consumed by the API middleware
//   - Metrics struct: concrete implementation holding the registry and server
//   - NewMetrics constructor: returns *Metrics (concrete type)
//
// Built-in metrics:
//   - requests_total{status}: processed requests by outcome
//   - request_duration_seconds{endpoint}: request latency histogram
//   - embedded_texts_total{endpoint}: texts embedded, single and batch
//   - model_load_seconds: wall time of the startup model load
//
// # Usage
//
//	m := metrics.NewMetrics(metrics.NewConfig())
//	go m.Server.ListenAndServe()
//
//	m.IncrementRequests("success")
//	defer m.RecordRequestDuration(time.Now(), "/embed")
//
// With Fx, FXModule wires the scrape server into the application lifecycle;
// see fx_module.go.
//
// # Configuration
//
//	METRICS_ADDRESS                     listen address (default :9090)
//	METRICS_ENABLE_DEFAULT_COLLECTORS   Go/process/build collectors (default true)
//	SERVICE_NAME                        constant service label (default codebert-server)
package metrics

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing service metrics.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// The service maintains its own isolated registry to prevent metric
	// name collisions with anything else in the process.
	Registry *prometheus.Registry

	// Core built-in metrics
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	embeddedTexts    *prometheus.CounterVec
	modelLoadSeconds prometheus.Gauge
}

// NewMetrics initializes and returns a new Metrics instance.
// It sets up a dedicated Prometheus registry, registers the service's
// built-in metrics plus optional default collectors, wraps everything with a
// constant service label, and creates the HTTP server exposing /metrics.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "codebert-server",
//	    EnableDefaultCollectors: true,
//	}
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("requests_total", "Total number of processed requests", []string{"status"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.embeddedTexts = createCounterVec("embedded_texts_total", "Total number of texts embedded", []string{"endpoint"})
	m.modelLoadSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "model_load_seconds",
		Help: "Wall-clock seconds spent loading the model at startup",
	})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.embeddedTexts,
		m.modelLoadSeconds,
	)

	// GoCollector: memory, goroutines, GC. ProcessCollector: CPU, fds.
	// BuildInfoCollector: binary version info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}

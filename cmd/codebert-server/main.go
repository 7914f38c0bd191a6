// Package main runs the CodeBERT embedding server: an HTTP/JSON API in
// front of a locally loaded ONNX encoder model, with Prometheus metrics
// and OpenTelemetry tracing.
//
// All configuration comes from environment variables; see the internal
// package docs for the full list. The process only starts listening once
// the model is loaded and has answered a probe inference, so a reachable
// port implies a serving model.
package main

import (
	"go.uber.org/fx"

	"github.com/codementor/codebert-server/internal/api"
	"github.com/codementor/codebert-server/internal/inference"
	"github.com/codementor/codebert-server/internal/logger"
	"github.com/codementor/codebert-server/internal/metrics"
	"github.com/codementor/codebert-server/internal/tracer"
)

func main() {
	fx.New(
		fx.Provide(
			logger.NewConfig,
			metrics.NewConfig,
			tracer.NewConfig,
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		inference.FXModule,
		api.FXModule,
		fx.Invoke(recordModelLoad),
	).Run()
}

// recordModelLoad publishes how long the startup load took, probe
// included, as a gauge.
func recordModelLoad(engine *inference.Engine, collector metrics.MetricsCollector) {
	collector.SetModelLoadSeconds(engine.LoadDuration().Seconds())
}

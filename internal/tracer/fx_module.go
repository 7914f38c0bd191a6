package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/codementor/codebert-server/internal/logger"
)

// FXModule provides the tracer to an Fx application.
//
// The module:
//  1. Adapts the application *logger.Logger to this package's Logger
//     interface and provides the NewClient constructor.
//  2. Invokes RegisterTracerLifecycle to flush and shut down the provider
//     on application termination.
//
// Dependencies required by this module:
// - A tracer.Config instance must be available in the dependency injection container
// - A *logger.Logger for initialization and lifecycle logging
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(log *logger.Logger) Logger { return log },
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers the shutdown hook for the tracer.
// OnStop gracefully shuts down the provider, flushing any batched spans to
// the exporter before the process exits.
//
// This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterTracerLifecycle(lc fx.Lifecycle, trc *Tracer, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			if trc.tracer == nil {
				return nil
			}
			return trc.tracer.Shutdown(ctx)
		},
	})
}

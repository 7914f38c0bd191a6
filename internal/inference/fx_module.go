package inference

import (
	"context"

	"go.uber.org/fx"

	"github.com/codementor/codebert-server/internal/logger"
)

// FXModule wires the inference engine into an fx application. NewEngine
// performs the full model load including the startup probe, so every
// component that depends on an Engine or Embedder sees a loaded model.
var FXModule = fx.Module(
	"inference",
	fx.Provide(
		NewConfig,
		NewEngine,
		func(e *Engine) Embedder { return e },
	),
	fx.Invoke(RegisterEngineLifecycle),
)

// RegisterEngineLifecycle releases the model session when the application
// stops.
func RegisterEngineLifecycle(lc fx.Lifecycle, e *Engine, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("unloading model", nil, map[string]interface{}{
				"model": e.ModelName(),
			})
			return e.Close()
		},
	})
}

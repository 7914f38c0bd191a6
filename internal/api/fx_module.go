package api

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the API server into an fx application. The server's
// constructor depends on the inference engine, so fx orders the model load
// strictly before the listener binds.
var FXModule = fx.Module(
	"api",
	fx.Provide(
		NewConfig,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle binds the listener on start and drains it on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}

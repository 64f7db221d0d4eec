package server

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/taproom/util/logging"
)

// Module serves the handlers group over http for the app lifetime.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		logging.DecorateLogger("http"),
		fx.Supply(config),
		fx.Provide(NewLifecycleServer),
		// force construction, nothing else depends on the server
		fx.Invoke(func(*HttpServer) {}),
	)
}

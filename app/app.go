package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/taproom/config"
	"github.com/lambda-feedback/taproom/internal/shell"
	"github.com/lambda-feedback/taproom/router"
	"github.com/lambda-feedback/taproom/util/conf"
	"github.com/lambda-feedback/taproom/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(config)), nil
}

// SharedModule provides what every runtime needs: the global config
// and the request dispatcher.
func SharedModule(cfg config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide dispatcher
		fx.Provide(router.New),
	)
}

package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/taproom/config"
	"github.com/lambda-feedback/taproom/util/conf"
	"github.com/lambda-feedback/taproom/util/logging"
)

// parseRuntimeConfig parses the config of the runtime started by the
// current command. The root --config file, TAPROOM__ env vars and the
// command flags are layered over the runtime defaults.
func parseRuntimeConfig[C any](ctx *cli.Context, defaults conf.DefaultConfig) (C, error) {
	return conf.Parse[C](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  defaults,
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.Path("config"),
		Log:       logging.LoggerFromContextOrNop(ctx.Context),
	})
}

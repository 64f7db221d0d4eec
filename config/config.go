package config

import "github.com/lambda-feedback/taproom/util/conf"

// EnvPrefix is the prefix of env vars holding config values. Nested
// keys are separated by `__`, e.g. `TAPROOM__LOG__LEVEL`.
const EnvPrefix = "TAPROOM__"

type LogConfig struct {
	// Level is the minimum level to log. Options: debug, info, warn,
	// error, dpanic, panic, fatal.
	Level string `conf:"level"`

	// Format selects the zap preset. Options: production, development.
	Format string `conf:"format"`
}

type Config struct {
	// Log is the logging configuration for the application
	Log LogConfig `conf:"log"`
}

var DefaultConfig = conf.MergeDefaults("log", conf.DefaultConfig{
	"level":  "info",
	"format": "production",
})

// CliMap maps root cli flags to their config keys.
var CliMap = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

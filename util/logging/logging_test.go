package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lambda-feedback/taproom/util/logging"
)

func TestLoggerContext(t *testing.T) {
	log := zap.NewExample()

	got, err := logging.LoggerFromContext(logging.ContextWithLogger(context.Background(), log))
	require.NoError(t, err)
	assert.Same(t, log, got)

	_, err = logging.LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, logging.ErrNoLoggerInContext)

	assert.NotNil(t, logging.LoggerFromContextOrNop(context.Background()))
}

func TestDecorateLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		fx.Module("serve",
			logging.DecorateLogger("serve"),
			fx.Invoke(func(log *zap.Logger) {
				log.Info("hello")
			}),
		),
	)
	app.RequireStart().RequireStop()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "serve", logs.All()[0].LoggerName)
}

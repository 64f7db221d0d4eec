package lambda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/taproom/internal/server"
)

// proxies builds the lambda handler function translating events of
// each source into http requests on the given handler.
var proxies = map[ProxySource]func(http.Handler) any{
	ProxySourceApiGatewayV1: func(h http.Handler) any { return httpadapter.New(h).ProxyWithContext },
	ProxySourceApiGatewayV2: func(h http.Handler) any { return httpadapter.NewV2(h).ProxyWithContext },
	ProxySourceAlb:          func(h http.Handler) any { return httpadapter.NewALB(h).ProxyWithContext },
}

type LambdaHandlerParams struct {
	fx.In

	Config   Config
	Handlers []*server.HttpHandler `group:"handlers"`
	Context  context.Context
	Logger   *zap.Logger
}

// LambdaHandler answers Lambda proxy events with the same handler group
// the standalone server mounts, so both runtimes dispatch identically.
type LambdaHandler struct {
	source  ProxySource
	handler http.Handler
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
}

func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		source:  params.Config.ProxySource,
		handler: server.NewServeMux(params.Handlers),
		ctx:     ctx,
		cancel:  cancel,
		log:     params.Logger.With(zap.Stringer("proxy_source", params.Config.ProxySource)),
	}
}

func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return handler.Start()
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})
	return handler
}

// Start runs the Lambda runtime interface client in the background.
// It fails for unknown proxy sources, before any event is accepted.
func (s *LambdaHandler) Start() error {
	proxy, err := s.ProxyFunction()
	if err != nil {
		s.log.Error("cannot start lambda runtime", zap.Error(err))
		return err
	}

	s.log.Debug("starting lambda runtime")

	go lambda.StartWithOptions(proxy, lambda.WithContext(s.ctx))

	return nil
}

// Shutdown cancels the runtime context.
func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

// ProxyFunction returns the handler function for the configured
// proxy source.
func (s *LambdaHandler) ProxyFunction() (any, error) {
	build, ok := proxies[s.source]
	if !ok {
		return nil, fmt.Errorf("invalid proxy source: %s", s.source)
	}

	return build(s.handler), nil
}

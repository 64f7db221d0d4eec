package lambda

import "github.com/lambda-feedback/taproom/util/conf"

// ProxySource names the AWS service that invokes the function, which
// determines the event shape.
type ProxySource string

const (
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"
	ProxySourceAlb          ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

// Valid reports whether events of this source can be proxied.
func (p ProxySource) Valid() bool {
	_, ok := proxies[p]
	return ok
}

type Config struct {
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}

var DefaultConfig = conf.DefaultConfig{
	"lambda_proxy_source": ProxySourceApiGatewayV2.String(),
}

package server

// HttpConfig describes where and how the http server listens.
type HttpConfig struct {
	// Host is the interface to bind to.
	Host string `conf:"host"`

	// Port is the tcp port to bind to, 0 picks a free port.
	Port int `conf:"port"`

	// H2c enables the HTTP/2 cleartext upgrade.
	H2c bool `conf:"h2c"`
}

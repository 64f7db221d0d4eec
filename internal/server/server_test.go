package server

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"
	"golang.org/x/net/http2"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	})
}

func newTestServer(t *testing.T, config HttpConfig, handlers ...*HttpHandler) *HttpServer {
	return NewHttpServer(HttpServerParams{
		Context:  context.Background(),
		Config:   config,
		Handlers: handlers,
		Logger:   zaptest.NewLogger(t),
	})
}

func get(t *testing.T, url string) string {
	t.Helper()

	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return string(body)
}

func TestNewServeMux(t *testing.T) {
	mux := NewServeMux([]*HttpHandler{
		AsHttpHandler("/", textHandler("root")).Handler,
		AsHttpHandler("/exact", textHandler("exact")).Handler,
	})

	for path, want := range map[string]string{"/": "root", "/anything": "root", "/exact": "exact"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Body.String(), path)
	}
}

func TestHttpServer_ServeAndShutdown(t *testing.T) {
	server := newTestServer(t,
		HttpConfig{Host: "127.0.0.1", Port: 0},
		AsHttpHandler("/", textHandler("hello")).Handler,
	)

	require.NoError(t, server.Listen(context.Background()))
	require.NotNil(t, server.Addr())

	done := make(chan error, 1)
	go func() { done <- server.Serve() }()

	assert.Equal(t, "hello", get(t, "http://"+server.Addr().String()+"/"))

	require.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}

func startTestServer(t *testing.T, config HttpConfig, handlers ...*HttpHandler) *HttpServer {
	server := newTestServer(t, config, handlers...)

	require.NoError(t, server.Listen(context.Background()))
	go server.Serve()
	t.Cleanup(func() { server.Shutdown(context.Background()) })

	return server
}

// h2cClient speaks HTTP/2 with prior knowledge over plain tcp.
func h2cClient() *http.Client {
	return &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
	}
}

func TestHttpServer_H2c(t *testing.T) {
	server := startTestServer(t,
		HttpConfig{Host: "127.0.0.1", Port: 0, H2c: true},
		AsHttpHandler("/", textHandler("h2c")).Handler,
	)

	res, err := h2cClient().Get("http://" + server.Addr().String() + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, 2, res.ProtoMajor)
	assert.Equal(t, "h2c", string(body))

	// plain HTTP/1.1 clients keep working
	assert.Equal(t, "h2c", get(t, "http://"+server.Addr().String()+"/"))
}

func TestHttpServer_WithoutH2c(t *testing.T) {
	server := startTestServer(t,
		HttpConfig{Host: "127.0.0.1", Port: 0},
		AsHttpHandler("/", textHandler("plain")).Handler,
	)

	_, err := h2cClient().Get("http://" + server.Addr().String() + "/")
	assert.Error(t, err)
}

func TestHttpServer_ServeWithoutListen(t *testing.T) {
	server := newTestServer(t, HttpConfig{Host: "127.0.0.1"})

	assert.Nil(t, server.Addr())
	assert.ErrorIs(t, server.Serve(), ErrNotListening)
}

func TestHttpServer_ListenFailure(t *testing.T) {
	first := newTestServer(t, HttpConfig{Host: "127.0.0.1", Port: 0})
	require.NoError(t, first.Listen(context.Background()))
	defer first.listener.Close()

	_, portStr, err := net.SplitHostPort(first.Addr().String())
	require.NoError(t, err)

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	second := newTestServer(t, HttpConfig{Host: "127.0.0.1", Port: port})
	assert.Error(t, second.Listen(context.Background()))
}

func TestModule(t *testing.T) {
	var server *HttpServer

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zaptest.NewLogger(t)),
		fx.Provide(func() HttpHandlerResult {
			return AsHttpHandler("/", textHandler("module"))
		}),
		Module(HttpConfig{Host: "127.0.0.1", Port: 0}),
		fx.Populate(&server),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, server.Addr())
	assert.Equal(t, "module", get(t, "http://"+server.Addr().String()+"/beers"))
}

package router

import (
	"net/http"
	"strings"
)

const contentTypeHTML = "text/html"

// Request represents an incoming request as seen by the dispatcher.
type Request struct {
	Path string
}

// Response represents the outcome of a dispatch. The body chunks are
// concatenated in order when the response is transmitted.
type Response struct {
	Status int
	Header map[string]string
	Body   []string
}

// String returns the concatenated response body.
func (r Response) String() string {
	return strings.Join(r.Body, "")
}

// Dispatcher is the interface for mapping requests to responses.
type Dispatcher interface {
	Handle(request Request) Response
}

// DispatcherFunc adapts a plain function to a Dispatcher.
type DispatcherFunc func(request Request) Response

// Handle calls f(request).
func (f DispatcherFunc) Handle(request Request) Response {
	return f(request)
}

type route struct {
	path string
	body string
}

// routes is evaluated in order, the first exact match wins.
var routes = []route{
	{path: "/", body: "Home page"},
	{path: "/beers", body: "I love beers!"},
}

const fallbackBody = "GTFO"

// Dispatch returns the response for the given path. It never fails,
// every path that is not a known route yields the fallback response.
func Dispatch(path string) Response {
	for _, r := range routes {
		if r.path == path {
			return newResponse(r.body)
		}
	}

	return newResponse(fallbackBody)
}

// Handle dispatches the request by its path.
func Handle(request Request) Response {
	return Dispatch(request.Path)
}

// New returns the default Dispatcher.
func New() Dispatcher {
	return DispatcherFunc(Handle)
}

func newResponse(body string) Response {
	return Response{
		Status: http.StatusOK,
		Header: map[string]string{"Content-Type": contentTypeHTML},
		Body:   []string{body},
	}
}

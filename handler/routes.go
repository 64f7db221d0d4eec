package handler

import "github.com/lambda-feedback/taproom/internal/server"

// NewDispatchRoute registers the handler on the catch-all pattern,
// routing itself is left to the dispatcher.
func NewDispatchRoute(handler *DispatchHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

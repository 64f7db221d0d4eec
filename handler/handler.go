package handler

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/taproom/router"
)

type DispatchHandlerParams struct {
	fx.In

	Dispatcher router.Dispatcher
	Log        *zap.Logger
}

func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatcher: params.Dispatcher,
		log:        params.Log,
	}
}

// DispatchHandler transmits the dispatcher's response for every
// incoming http request.
type DispatchHandler struct {
	dispatcher router.Dispatcher
	log        *zap.Logger
}

func (h *DispatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	// Dispatch the request
	response := h.dispatcher.Handle(router.Request{Path: r.URL.Path})

	log.Debug("dispatched request",
		zap.Int("status", response.Status),
		zap.Int("chunks", len(response.Body)),
	)

	// Map response headers
	for k, v := range response.Header {
		w.Header().Set(k, v)
	}

	// Write response headers and status code
	w.WriteHeader(response.Status)

	// Write response body, chunk by chunk
	for _, chunk := range response.Body {
		if _, err := w.Write([]byte(chunk)); err != nil {
			log.Debug("failed to write response", zap.Error(err))
			return
		}
	}
}

package server

import (
	"net/http"
	"time"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// The proxy ships logging, CORS and rate limiting middleware.
type Middleware func(http.Handler) http.Handler

// Handler is an http.Handler that knows its own routes, so registration
// stays next to the implementation.
type Handler interface {
	http.Handler
	Routes() []string
}

// Router defines HTTP routing with middleware management.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// New returns an [http.Server] for the given listen address with sane
// read and write timeouts. All local HTTP surfaces start from here.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

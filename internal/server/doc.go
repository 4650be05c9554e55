// Package server provides HTTP routing, middleware and the handlers for
// the player's two local HTTP surfaces.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Search Proxy
//
// [SearchHandler] exposes /search and /suggest over loopback so other
// local clients can reuse the provider chain and its fallback behavior
// without speaking to the upstream instances themselves. The serve
// command wires it behind logging, CORS and rate limiting middleware.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback flow
// for sign-in. It validates the state parameter (CSRF protection),
// exchanges the authorization code for tokens, and sends the result
// through a channel. Only one callback is processed per flow.
package server

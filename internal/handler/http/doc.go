// Package http implements the HTTP transport layer of the marketplace.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. The access gate and the role policy run as middleware, so a guarded
// handler only ever sees a request whose context carries a verified
// [auth.Principal]. Cross-cutting concerns such as request tracing, access
// logging, metrics, CORS and compression are handled in this package before
// requests are delegated to the service layer.
package http

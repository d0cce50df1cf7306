// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides the cross-cutting concerns of the read-only reporting API:
//
//   - RayID: Generates a unique request id (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing. Inbound
//     ids from upstream proxies are honored.
//   - Auth: Optional API key validation. The dataset reports are public by
//     default; configuring a server API key gates the whole surface.
//
// Both are registered globally in the serve command, RayID first so every
// later log line can carry the id.
package middleware

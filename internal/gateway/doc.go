// Package gateway provides the transport layer between the console and the
// farm-management REST API.
//
// The central abstraction is the generic [Resource], a thin CRUD client over
// one collection endpoint (GET/POST/PUT/DELETE /api/<Resource>). A shared
// [Client] owns the underlying resty client, the base URL, the request
// timeout, and the bearer token of the active session.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package gateway

// Package client talks to the pizza store REST backend.
//
// # Overview
//
// The package provides:
//  1. Narrow API contracts per concern (AuthClient, StoreClient,
//     ProfileClient, PromotionClient) composed into Client, so services
//     depend only on what they call.
//  2. HTTPClient, a net/http implementation that keeps the backend session
//     cookie in a jar, sends and receives JSON, stamps every request with an
//     X-Request-ID and applies a per-request timeout.
//
// # Error Handling
//
// A non-2xx answer becomes an *APIError carrying the status code and the
// message the backend put in the body (".message", then ".error", then a
// plain-text body). APIError unwraps to ErrUnauthorized, ErrNotFound or
// ErrConflict by status; transport failures wrap ErrUnavailable.
//
// HTTPClient is safe for concurrent use.
package client

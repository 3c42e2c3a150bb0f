// Package common contains constants shared by the client and the development
// backend.
package common

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// SessionCookieName is the cookie the backend keeps its session under.
const SessionCookieName = "JSESSIONID"

// DefaultRestaurantName is shown whenever the restaurant name cannot be loaded.
const DefaultRestaurantName = "Pizza Store"

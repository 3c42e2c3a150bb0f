package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnknownCategory = errors.New("unknown account category")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	// Message is what the backend said, empty when it said nothing usable.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return nil
	}
}

type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

const maxTextMessage = 512

// extractMessage pulls a human-readable message out of an error body.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		return env.Error
	}
	if json.Valid(body) {
		return ""
	}

	if strings.HasPrefix(trimmed, "<") || !utf8.ValidString(trimmed) || len(trimmed) > maxTextMessage {
		return ""
	}
	return trimmed
}

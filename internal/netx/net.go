// Package netx holds HTTP plumbing shared by the client: cookie jars and
// endpoint URL handling.
package netx

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NewCookieJar returns a jar that scopes cookies by public suffix, so a
// session cookie set by the backend is replayed on every later request.
func NewCookieJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// ParseBaseURL validates a backend base URL. Only http and https are accepted
// and a trailing slash is dropped so paths can be appended verbatim.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// JoinPath appends an absolute API path such as "/api/cart" to base.
func JoinPath(base *url.URL, path string) string {
	u := *base
	u.Path = base.Path + "/" + strings.TrimLeft(path, "/")
	return u.String()
}

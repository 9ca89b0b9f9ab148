package tenant

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTimeout = 30 * time.Second

// Factory builds tenant-scoped clients from whatever session the source
// currently holds. The built client is memoized on the (schema, access,
// refresh) triple and only rebuilt when any of the three changes.
type Factory struct {
	domain string
	source SessionSource
	hc     *http.Client

	mu     sync.Mutex
	key    Session
	cached *Client
}

// Option tweaks a Factory at construction.
type Option func(*Factory)

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Factory) { f.hc = hc }
}

// NewFactory wires a factory for the given API domain (e.g. fastrasuites.com).
func NewFactory(domain string, source SessionSource, opts ...Option) *Factory {
	f := &Factory{
		domain: domain,
		source: source,
		hc:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Client returns the scoped client for the current session. It fails fast
// with ErrUnavailable when the schema or access token is missing and with
// ErrTokenExpired when the access token's exp claim has already passed, so
// callers short-circuit instead of issuing doomed requests.
func (f *Factory) Client() (*Client, error) {
	s := f.source.Session()
	if s.Schema == "" || s.AccessToken == "" {
		return nil, ErrUnavailable
	}
	if err := checkExpiry(s.AccessToken); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached != nil && f.key == s {
		return f.cached, nil
	}
	f.cached = NewClient(fmt.Sprintf("https://%s.%s", s.Schema, f.domain), s.AccessToken, f.hc)
	f.key = s
	return f.cached, nil
}

// checkExpiry peeks at the token's registered claims without verifying the
// signature (the backend owns verification). Tokens that do not parse as JWT
// pass through untouched; the backend will reject them if they are bad.
func checkExpiry(access string) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}
	return nil
}

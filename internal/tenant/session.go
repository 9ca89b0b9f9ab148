// Package tenant resolves the active tenant session and builds the HTTP
// client every backend call goes through. Each tenant lives under its own
// subdomain (https://{schema}.{domain}); requests carry the session's bearer
// token and a generated request id.
package tenant

import "errors"

// ErrUnavailable is returned when no usable session exists. Repositories
// surface it verbatim so a missing tenant configuration is never mistaken for
// a backend failure.
var ErrUnavailable = errors.New("API client is not available")

// ErrTokenExpired is returned when the session's access token has already
// expired; issuing the request would only produce a 401.
var ErrTokenExpired = errors.New("access token is expired")

// Session is the ambient tenant state: the schema naming the tenant plus the
// token pair obtained by the auth provider (token acquisition itself happens
// elsewhere).
type Session struct {
	Schema       string
	AccessToken  string
	RefreshToken string
}

// SessionSource supplies the current session on demand. Keeping this an
// interface lets callers inject the session explicitly instead of reading
// ambient globals.
type SessionSource interface {
	Session() Session
}

// SourceFunc adapts a function to SessionSource.
type SourceFunc func() Session

func (f SourceFunc) Session() Session { return f() }

// StaticSource returns a source that always yields the same session.
func StaticSource(s Session) SessionSource {
	return SourceFunc(func() Session { return s })
}

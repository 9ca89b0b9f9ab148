package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestFactory_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		session Session
	}{
		{"empty session", Session{}},
		{"missing access token", Session{Schema: "acme"}},
		{"missing schema", Session{AccessToken: "tok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory("fastrasuites.com", StaticSource(tt.session))
			if _, err := f.Client(); !errors.Is(err, ErrUnavailable) {
				t.Errorf("Client() err = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestFactory_MemoizedPerTriple(t *testing.T) {
	session := Session{Schema: "acme", AccessToken: "tok-1", RefreshToken: "ref-1"}
	f := NewFactory("fastrasuites.com", SourceFunc(func() Session { return session }))

	first, err := f.Client()
	if err != nil {
		t.Fatalf("Client(): %v", err)
	}
	if first.BaseURL() != "https://acme.fastrasuites.com" {
		t.Errorf("BaseURL() = %q", first.BaseURL())
	}

	again, err := f.Client()
	if err != nil {
		t.Fatalf("Client(): %v", err)
	}
	if again != first {
		t.Error("same session triple must reuse the memoized client")
	}

	session.AccessToken = "tok-2"
	rebuilt, err := f.Client()
	if err != nil {
		t.Fatalf("Client(): %v", err)
	}
	if rebuilt == first {
		t.Error("changed access token must rebuild the client")
	}
}

func TestFactory_ExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	f := NewFactory("fastrasuites.com", StaticSource(Session{Schema: "acme", AccessToken: signed}))
	if _, err := f.Client(); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Client() err = %v, want ErrTokenExpired", err)
	}
}

func TestFactory_OpaqueTokenPassesThrough(t *testing.T) {
	// Non-JWT tokens are not inspected; the backend decides their fate.
	f := NewFactory("fastrasuites.com", StaticSource(Session{Schema: "acme", AccessToken: "opaque-token"}))
	if _, err := f.Client(); err != nil {
		t.Errorf("Client() err = %v, want nil", err)
	}
}

func TestClient_Do(t *testing.T) {
	var gotAuth, gotReqID, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "tok-1", srv.Client())
	status, body, err := cl.Do(context.Background(), http.MethodPost, "/purchase/purchase-request/", map[string]string{"purpose": "chairs"})
	if err != nil {
		t.Fatalf("Do(): %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("status = %d", status)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("X-Request-ID header missing")
	}
	if gotPath != "/purchase/purchase-request/" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // deliberately dead

	cl := NewClient(srv.URL, "tok", nil)
	if _, _, err := cl.Do(context.Background(), http.MethodGet, "/purchase/purchase-request/", nil); err == nil {
		t.Error("expected transport error from closed server")
	}
}

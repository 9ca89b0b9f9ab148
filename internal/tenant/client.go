package tenant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Client issues JSON requests against one tenant's base URL with the
// session's bearer token attached. It is immutable after construction and
// safe to share across concurrent calls.
type Client struct {
	baseURL string
	access  string
	hc      *http.Client
}

// NewClient binds a client to a base URL and bearer token. Most callers go
// through Factory, which derives the URL from the tenant schema; tests point
// this at a local server instead.
func NewClient(baseURL, access string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), access: access, hc: hc}
}

// BaseURL returns the tenant-scoped origin, e.g. https://acme.fastrasuites.com.
func (c *Client) BaseURL() string { return c.baseURL }

// Do issues one request. path is joined to the base URL; a non-nil body is
// marshalled as JSON. It returns the response status and raw body; an error
// means no response arrived at all (transport failure), never a non-2xx.
func (c *Client) Do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.access)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, payload, nil
}

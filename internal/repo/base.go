// Package repo implements the tenant-scoped repositories for the three
// procurement document kinds. All three share one generic core: the endpoint
// layout, the Result envelope handling and the cache bookkeeping are
// identical, only the document type differs.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/fastrasuites/fastra-procure-go/internal/cache"
	"github.com/fastrasuites/fastra-procure-go/internal/httpx"
	"github.com/fastrasuites/fastra-procure-go/internal/models"
	"github.com/fastrasuites/fastra-procure-go/internal/services"
	"github.com/fastrasuites/fastra-procure-go/internal/tenant"
)

// ClientProvider hands out the current tenant-scoped client. *tenant.Factory
// satisfies it; tests inject their own.
type ClientProvider interface {
	Client() (*tenant.Client, error)
}

// docRepo is the shared core. T is one of the three document models.
type docRepo[T models.Document] struct {
	provider ClientProvider
	docType  models.DocType
	cache    *cache.ListCache

	mu         sync.Mutex
	current    T
	hasCurrent bool
}

// List fetches the document list, optionally filtered by a search term, and
// replaces the cached list on success.
func (r *docRepo[T]) List(ctx context.Context, search string) (httpx.Result[[]models.Summary], error) {
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[[]models.Summary]{}, err
	}
	path := r.docType.Path()
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	status, body, err := cl.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return httpx.FailTransport[[]models.Summary](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[[]models.Summary](status, httpx.DecodeErrors(status, body)), nil
	}
	var items []models.Summary
	if err := json.Unmarshal(body, &items); err != nil {
		return httpx.FailTransport[[]models.Summary](fmt.Errorf("decode list: %w", err)), nil
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = models.ExtractID(items[i].URL)
		}
	}
	r.cache.Replace(r.docType, items)
	return httpx.OK(status, items), nil
}

// ApprovedList fetches the pre-filtered list of approved documents used by
// the conversion and selection pickers. formOnly asks the backend for the
// reduced form variant. Picker results are not cached.
func (r *docRepo[T]) ApprovedList(ctx context.Context, formOnly bool) (httpx.Result[[]models.Summary], error) {
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[[]models.Summary]{}, err
	}
	path := r.docType.Path() + "approved_list/"
	if formOnly {
		path += "?form=true"
	}
	status, body, err := cl.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return httpx.FailTransport[[]models.Summary](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[[]models.Summary](status, httpx.DecodeErrors(status, body)), nil
	}
	var items []models.Summary
	if err := json.Unmarshal(body, &items); err != nil {
		return httpx.FailTransport[[]models.Summary](fmt.Errorf("decode list: %w", err)), nil
	}
	return httpx.OK(status, items), nil
}

// Get fetches a single document (items expanded with product/unit/vendor/
// currency detail) and remembers it as the current one.
func (r *docRepo[T]) Get(ctx context.Context, id string) (httpx.Result[T], error) {
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[T]{}, err
	}
	status, body, err := cl.Do(ctx, http.MethodGet, r.docType.Path()+id+"/", nil)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[T](status, httpx.DecodeErrors(status, body)), nil
	}
	doc, err := decodeDoc[T](body)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	r.mu.Lock()
	r.current = doc
	r.hasCurrent = true
	r.mu.Unlock()
	return httpx.OK(status, doc), nil
}

// Current returns the last document fetched with Get.
func (r *docRepo[T]) Current() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.hasCurrent
}

// Create validates the payload locally, then POSTs it as a hidden draft. The
// created document is appended to the cached list.
func (r *docRepo[T]) Create(ctx context.Context, doc T) (httpx.Result[T], error) {
	return r.create(ctx, doc, models.StatusDraft, true)
}

// CreateAndSend validates the payload locally, then POSTs it already
// submitted (with the kind's wire word, e.g. "pending" for purchase
// requests) and un-hidden.
func (r *docRepo[T]) CreateAndSend(ctx context.Context, doc T) (httpx.Result[T], error) {
	return r.create(ctx, doc, models.StatusSubmitted, false)
}

func (r *docRepo[T]) create(ctx context.Context, doc T, as models.Status, hidden bool) (httpx.Result[T], error) {
	if err := services.ValidateForSubmit(doc); err != nil {
		return httpx.Result[T]{}, err
	}
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[T]{}, err
	}
	payload, err := payloadMap(doc, as.Wire(r.docType), hidden)
	if err != nil {
		return httpx.Result[T]{}, err
	}
	status, body, err := cl.Do(ctx, http.MethodPost, r.docType.Path(), payload)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[T](status, httpx.DecodeErrors(status, body)), nil
	}
	created, err := decodeDoc[T](body)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	r.cache.Append(r.docType, created.Summarize())
	return httpx.OK(status, created), nil
}

// Update PUTs a full document and merges the result into its cached entry.
func (r *docRepo[T]) Update(ctx context.Context, id string, doc T) (httpx.Result[T], error) {
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[T]{}, err
	}
	status, body, err := cl.Do(ctx, http.MethodPut, r.docType.Path()+id+"/", doc)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[T](status, httpx.DecodeErrors(status, body)), nil
	}
	updated, err := decodeDoc[T](body)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	r.cache.Patch(r.docType, updated.Summarize())
	return httpx.OK(status, updated), nil
}

// Transition applies a lifecycle action to the document. doc must be the
// current state of the document; its status selects the transition and, for
// plain-PATCH transitions, its fields form the PATCH body. On success the
// new status is merged into the cached entry without removing it.
func (r *docRepo[T]) Transition(ctx context.Context, action services.Action, id string, doc T) (httpx.Result[T], error) {
	from, ok := models.ParseStatus(r.docType, doc.WireStatus())
	if !ok {
		return httpx.Result[T]{}, fmt.Errorf("unknown %s status %q", r.docType, doc.WireStatus())
	}
	t, err := services.TransitionFor(r.docType, from, action)
	if err != nil {
		return httpx.Result[T]{}, err
	}
	if t.Validate {
		if err := services.ValidateForSubmit(doc); err != nil {
			return httpx.Result[T]{}, err
		}
	}
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[T]{}, err
	}
	var body any
	if t.Endpoint == "" {
		m, err := payloadMap(doc, t.To.Wire(r.docType), false)
		if err != nil {
			return httpx.Result[T]{}, err
		}
		body = m
	}
	status, raw, err := cl.Do(ctx, http.MethodPatch, r.docType.Path()+id+"/"+t.Endpoint, body)
	if err != nil {
		return httpx.FailTransport[T](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[T](status, httpx.DecodeErrors(status, raw)), nil
	}
	// Some transition endpoints answer with a bare acknowledgement; fall
	// back to the known document when the body is not the updated one.
	result := doc
	if decoded, derr := decodeDoc[T](raw); derr == nil && decoded.DocumentID() != "" {
		result = decoded
	}
	r.cache.PatchStatus(r.docType, id, t.To.Wire(r.docType), false)
	return httpx.OK(status, result), nil
}

// SoftDelete asks the backend to mark the document removed (never a hard
// delete) and drops it from the cached list.
func (r *docRepo[T]) SoftDelete(ctx context.Context, id string) (httpx.Result[struct{}], error) {
	cl, err := r.provider.Client()
	if err != nil {
		return httpx.Result[struct{}]{}, err
	}
	status, body, err := cl.Do(ctx, http.MethodDelete, r.docType.Path()+id+"/soft_delete/", nil)
	if err != nil {
		return httpx.FailTransport[struct{}](err), nil
	}
	if !ok2xx(status) {
		return httpx.Fail[struct{}](status, httpx.DecodeErrors(status, body)), nil
	}
	r.cache.Remove(r.docType, id)
	return httpx.OK(status, struct{}{}), nil
}

func ok2xx(status int) bool { return status >= 200 && status < 300 }

func decodeDoc[T models.Document](body []byte) (T, error) {
	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// payloadMap renders a document as a create/PATCH body with its lifecycle
// fields forced: server-assigned fields are stripped and status/is_hidden
// overwritten with the requested values.
func payloadMap(doc models.Document, wireStatus string, hidden bool) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	delete(m, "id")
	delete(m, "url")
	m["status"] = wireStatus
	m["is_hidden"] = hidden
	return m, nil
}

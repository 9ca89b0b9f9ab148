// Package httpx carries the client-side request/response plumbing shared by
// the document repositories: the Result envelope, the backend error decoding
// and the flattening of nested field errors into one readable message.
package httpx

import (
	"net/http"
)

// Result is the uniform outcome of a backend call. Backend-reported failures
// and transport failures both land here with Success=false so callers render
// a single error branch; only local precondition failures (unavailable
// client, validation) travel on the error channel instead.
type Result[T any] struct {
	Success bool        `json:"success"`
	Data    T           `json:"data,omitempty"`
	Errors  FieldErrors `json:"errors,omitempty"`
	Status  int         `json:"status"`
}

// OK wraps a decoded 2xx payload.
func OK[T any](status int, data T) Result[T] {
	return Result[T]{Success: true, Data: data, Status: status}
}

// Fail wraps a non-2xx backend response.
func Fail[T any](status int, errs FieldErrors) Result[T] {
	return Result[T]{Errors: errs, Status: status}
}

// FailTransport wraps an error that prevented any response from arriving.
// Status stays 0 to distinguish it from backend-reported failures.
func FailTransport[T any](err error) Result[T] {
	return Result[T]{Errors: FieldErrors{"detail": err.Error()}}
}

// Message renders the failure as one human-readable string. Duplicate
// conflicts reported by the backend get a clearer special-cased message than
// the raw field dump.
func (r Result[T]) Message() string {
	if r.Success {
		return ""
	}
	if r.Status == http.StatusConflict || isDuplicate(r.Errors) {
		return "A matching document already exists; duplicate documents are not allowed."
	}
	if r.Status == http.StatusUnauthorized || r.Status == http.StatusForbidden || r.Status == http.StatusNotFound {
		if d := r.Errors.Detail(); d != "" {
			return d
		}
	}
	if msg := r.Errors.Flatten(); msg != "" {
		return msg
	}
	if r.Status == 0 {
		return "no response from server"
	}
	return http.StatusText(r.Status)
}

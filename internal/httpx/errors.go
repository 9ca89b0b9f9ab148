package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// FieldErrors is the backend's error payload: a field-keyed map whose values
// may be strings, lists of strings, or nested maps for per-item errors.
// Authorization and not-found responses use a single top-level "detail" key.
type FieldErrors map[string]any

// DecodeErrors interprets a non-2xx response body. Non-JSON bodies collapse
// to a detail message so callers always get something renderable.
func DecodeErrors(status int, body []byte) FieldErrors {
	var errs FieldErrors
	if err := json.Unmarshal(body, &errs); err == nil && len(errs) > 0 {
		return errs
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" || len(msg) > 200 {
		msg = http.StatusText(status)
	}
	return FieldErrors{"detail": msg}
}

// Detail returns the top-level detail message, if any.
func (e FieldErrors) Detail() string {
	if d, ok := e["detail"].(string); ok {
		return d
	}
	return ""
}

// Flatten renders the whole error map as one readable message. Nested field
// paths are dot-joined (items.0.product: ...), keys sorted so the output is
// stable, entries separated by "; ".
func (e FieldErrors) Flatten() string {
	var parts []string
	flattenInto("", e, &parts)
	return strings.Join(parts, "; ")
}

func flattenInto(prefix string, v any, out *[]string) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(joinPath(prefix, k), t[k], out)
		}
	case FieldErrors:
		flattenInto(prefix, map[string]any(t), out)
	case []any:
		if msgs, ok := stringList(t); ok {
			*out = append(*out, label(prefix)+strings.Join(msgs, ", "))
			return
		}
		for i, el := range t {
			flattenInto(joinPath(prefix, strconv.Itoa(i)), el, out)
		}
	default:
		*out = append(*out, label(prefix)+fmt.Sprint(t))
	}
}

func stringList(vals []any) ([]string, bool) {
	msgs := make([]string, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		msgs = append(msgs, s)
	}
	return msgs, true
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func label(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + ": "
}

func isDuplicate(errs FieldErrors) bool {
	flat := strings.ToLower(errs.Flatten())
	return strings.Contains(flat, "already exists") || strings.Contains(flat, "duplicate")
}

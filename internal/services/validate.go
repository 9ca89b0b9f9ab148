// Package services holds the pure business rules of the procurement chain:
// the pre-submit validation gate, the status transition table and the
// document conversion mappers. Nothing here touches the network.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fastrasuites/fastra-procure-go/internal/models"
)

// ErrInvalidDocument tags every pre-submit validation failure so callers can
// tell local gate failures apart from backend-reported ones.
var ErrInvalidDocument = errors.New("document is not ready to be sent")

// Violations collects field-keyed validation messages.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Reason renders the violations as one human-readable message, keys sorted.
func (v Violations) Reason() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return strings.Join(parts, "; ")
}

// CheckForSubmit runs the local gate a document must pass before it is
// created or sent: every required reference set, at least one line item, no
// negative quantities and no two items on the same product.
func CheckForSubmit(doc models.Document) Violations {
	v := Violations{}
	for field, ref := range doc.RequiredRefs() {
		if ref.IsZero() {
			v[field] = "required"
		}
	}
	items := doc.LineItems()
	if len(items) == 0 {
		v["items"] = "at least one line item is required"
		return v
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.Product.IsZero() {
			v[fmt.Sprintf("items.%d.product", i)] = "required"
			continue
		}
		if it.Qty < 0 {
			v[fmt.Sprintf("items.%d.qty", i)] = "must not be negative"
		}
		id := it.Product.ID()
		if seen[id] {
			v[fmt.Sprintf("items.%d.product", i)] = "products must be unique within a document"
			continue
		}
		seen[id] = true
	}
	return v
}

// ValidateForSubmit wraps CheckForSubmit into a single error carrying the
// flattened reason. It runs synchronously and is the only local gate keeping
// partially-specified documents away from the backend.
func ValidateForSubmit(doc models.Document) error {
	if v := CheckForSubmit(doc); !v.Empty() {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, v.Reason())
	}
	return nil
}

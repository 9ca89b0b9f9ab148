package models

import (
	"encoding/json"
	"fmt"
)

// Ref points at a related resource (vendor, currency, product, location...).
// List payloads carry bare id/URL strings; detail payloads expand the same
// field into an object with at least a url and a display name. Ref accepts
// both and always marshals back to the bare URL, which is what the backend
// expects in create/update payloads.
type Ref struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// NewRef builds a reference from a bare id or URL.
func NewRef(idOrURL string) Ref { return Ref{URL: idOrURL} }

// ID returns the opaque id, the last non-empty path segment of the URL.
func (r Ref) ID() string { return ExtractID(r.URL) }

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool { return r.URL == "" }

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.URL == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.URL)
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Ref{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = Ref{URL: s}
		return nil
	}
	var obj struct {
		URL  string `json:"url"`
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("reference: expected string or object: %w", err)
	}
	url := obj.URL
	if url == "" {
		url = obj.ID
	}
	*r = Ref{URL: url, Name: obj.Name}
	return nil
}

// LineItem is one product/quantity/price row within a document. Documents may
// not carry two items referencing the same product.
type LineItem struct {
	ID                 string  `json:"id,omitempty"`
	Product            Ref     `json:"product"`
	Description        string  `json:"description,omitempty"`
	Qty                int     `json:"qty"`
	UnitOfMeasure      Ref     `json:"unit_of_measure"`
	EstimatedUnitPrice float64 `json:"estimated_unit_price"`
}

// Summary is the per-row shape kept in list responses and in the list cache.
type Summary struct {
	ID       string `json:"id"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
	Vendor   Ref    `json:"vendor,omitempty"`
	Currency Ref    `json:"currency,omitempty"`
	Status   string `json:"status"`
	IsHidden bool   `json:"is_hidden"`
}

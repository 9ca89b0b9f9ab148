package models

import "strings"

// DocType identifies one of the three procurement document kinds. Its value
// is the path segment the backend uses for that kind.
type DocType string

const (
	DocPurchaseRequest     DocType = "purchase-request"
	DocRequestForQuotation DocType = "request-for-quotation"
	DocPurchaseOrder       DocType = "purchase-order"
)

// Path returns the collection path for this document kind, with trailing slash.
func (dt DocType) Path() string { return "/purchase/" + string(dt) + "/" }

// Status is the unified four-state document lifecycle. Purchase requests and
// RFQ/PO expose the same lifecycle under two different wire vocabularies
// (pending/approved/rejected vs awaiting/completed/cancelled); callers work
// with Status and translate at the wire boundary.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Vocabulary maps the unified lifecycle onto one document kind's wire words.
// Draft is spelled "draft" everywhere.
type Vocabulary struct {
	Submitted string
	Approved  string
	Rejected  string
}

var vocabularies = map[DocType]Vocabulary{
	DocPurchaseRequest:     {Submitted: "pending", Approved: "approved", Rejected: "rejected"},
	DocRequestForQuotation: {Submitted: "awaiting", Approved: "completed", Rejected: "cancelled"},
	DocPurchaseOrder:       {Submitted: "awaiting", Approved: "completed", Rejected: "cancelled"},
}

// VocabularyFor returns the wire vocabulary for a document kind.
func VocabularyFor(dt DocType) Vocabulary { return vocabularies[dt] }

// Wire translates a unified status into the wire word for a document kind.
func (s Status) Wire(dt DocType) string {
	v := vocabularies[dt]
	switch s {
	case StatusSubmitted:
		return v.Submitted
	case StatusApproved:
		return v.Approved
	case StatusRejected:
		return v.Rejected
	default:
		return string(StatusDraft)
	}
}

// ParseStatus translates a wire status word back into the unified lifecycle.
func ParseStatus(dt DocType, wire string) (Status, bool) {
	v := vocabularies[dt]
	switch strings.ToLower(strings.TrimSpace(wire)) {
	case string(StatusDraft):
		return StatusDraft, true
	case v.Submitted:
		return StatusSubmitted, true
	case v.Approved:
		return StatusApproved, true
	case v.Rejected:
		return StatusRejected, true
	}
	return "", false
}

// Terminal reports whether a status ends the forward lifecycle.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Document is the behaviour the repositories need from any of the three
// procurement document kinds.
type Document interface {
	DocumentID() string
	DocumentType() DocType
	LineItems() []LineItem
	// RequiredRefs lists the reference fields that must be set before the
	// document may be created or sent, keyed by wire field name.
	RequiredRefs() map[string]Ref
	WireStatus() string
	Summarize() Summary
}

// ExtractID returns the last non-empty path segment of a resource URL. The
// backend identifies resources by URL; ids are opaque and only ever compared.
func ExtractID(resource string) string {
	trimmed := strings.TrimRight(resource, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

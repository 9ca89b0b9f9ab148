package models

import (
	"encoding/json"
	"testing"
)

func TestStatusWire(t *testing.T) {
	tests := []struct {
		name   string
		dt     DocType
		status Status
		want   string
	}{
		{"pr draft", DocPurchaseRequest, StatusDraft, "draft"},
		{"pr submitted", DocPurchaseRequest, StatusSubmitted, "pending"},
		{"pr approved", DocPurchaseRequest, StatusApproved, "approved"},
		{"pr rejected", DocPurchaseRequest, StatusRejected, "rejected"},
		{"rfq submitted", DocRequestForQuotation, StatusSubmitted, "awaiting"},
		{"rfq approved", DocRequestForQuotation, StatusApproved, "completed"},
		{"rfq rejected", DocRequestForQuotation, StatusRejected, "cancelled"},
		{"po submitted", DocPurchaseOrder, StatusSubmitted, "awaiting"},
		{"po rejected", DocPurchaseOrder, StatusRejected, "cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Wire(tt.dt); got != tt.want {
				t.Errorf("Wire() = %q, want %q", got, tt.want)
			}
			// The mapping must round-trip.
			back, ok := ParseStatus(tt.dt, tt.want)
			if !ok || back != tt.status {
				t.Errorf("ParseStatus(%q) = %q, %v; want %q", tt.want, back, ok, tt.status)
			}
		})
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	if _, ok := ParseStatus(DocPurchaseRequest, "awaiting"); ok {
		t.Error("purchase requests do not use the awaiting vocabulary")
	}
	if _, ok := ParseStatus(DocPurchaseOrder, "pending"); ok {
		t.Error("purchase orders do not use the pending vocabulary")
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://acme.fastrasuites.com/purchase/purchase-request/PR0007/", "PR0007"},
		{"/purchase/purchase-order/42", "42"},
		{"PR0007", "PR0007"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractID(tt.in); got != tt.want {
			t.Errorf("ExtractID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRef_UnmarshalBothShapes(t *testing.T) {
	// Lists carry bare URLs.
	var bare Ref
	if err := json.Unmarshal([]byte(`"https://acme.fastrasuites.com/vendors/V1/"`), &bare); err != nil {
		t.Fatalf("unmarshal string ref: %v", err)
	}
	if bare.ID() != "V1" {
		t.Errorf("ID() = %q, want V1", bare.ID())
	}

	// Detail responses expand the same field into an object.
	var expanded Ref
	if err := json.Unmarshal([]byte(`{"url":"https://acme.fastrasuites.com/vendors/V1/","name":"Acme Supplies"}`), &expanded); err != nil {
		t.Fatalf("unmarshal object ref: %v", err)
	}
	if expanded.ID() != "V1" || expanded.Name != "Acme Supplies" {
		t.Errorf("expanded = %+v", expanded)
	}

	// Refs always marshal back to the bare URL the backend expects.
	out, err := json.Marshal(expanded)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"https://acme.fastrasuites.com/vendors/V1/"` {
		t.Errorf("marshal = %s", out)
	}
}

func TestDocument_Summarize(t *testing.T) {
	pr := PurchaseRequest{
		URL:      "https://acme.fastrasuites.com/purchase/purchase-request/PR1/",
		Purpose:  "Office chairs",
		Status:   "pending",
		Vendor:   NewRef("V1"),
		Currency: NewRef("NGN"),
	}
	sum := pr.Summarize()
	if sum.ID != "PR1" || sum.Status != "pending" || sum.Title != "Office chairs" {
		t.Errorf("Summarize() = %+v", sum)
	}
}

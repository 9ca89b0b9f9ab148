package models

// PurchaseOrder is the final document of the chain, created from a completed
// RFQ. The backend enforces one order per RFQ.
type PurchaseOrder struct {
	ID                  string     `json:"id,omitempty"`
	URL                 string     `json:"url,omitempty"`
	RelatedRFQ          Ref        `json:"related_rfq,omitempty"`
	Vendor              Ref        `json:"vendor"`
	DestinationLocation Ref        `json:"destination_location"`
	Currency            Ref        `json:"currency"`
	PaymentTerms        string     `json:"payment_terms,omitempty"`
	PurchasePolicy      string     `json:"purchase_policy,omitempty"`
	DeliveryTerms       string     `json:"delivery_terms,omitempty"`
	Items               []LineItem `json:"items"`
	Status              string     `json:"status"`
	IsHidden            bool       `json:"is_hidden"`
}

func (po PurchaseOrder) DocumentID() string {
	if po.ID != "" {
		return po.ID
	}
	return ExtractID(po.URL)
}

func (PurchaseOrder) DocumentType() DocType { return DocPurchaseOrder }

func (po PurchaseOrder) LineItems() []LineItem { return po.Items }

func (po PurchaseOrder) RequiredRefs() map[string]Ref {
	return map[string]Ref{
		"vendor":               po.Vendor,
		"currency":             po.Currency,
		"destination_location": po.DestinationLocation,
		"related_rfq":          po.RelatedRFQ,
	}
}

func (po PurchaseOrder) WireStatus() string { return po.Status }

func (po PurchaseOrder) Summarize() Summary {
	return Summary{
		ID:       po.DocumentID(),
		URL:      po.URL,
		Title:    po.DeliveryTerms,
		Vendor:   po.Vendor,
		Currency: po.Currency,
		Status:   po.Status,
		IsHidden: po.IsHidden,
	}
}

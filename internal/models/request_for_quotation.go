package models

// RequestForQuotation is the middle document of the chain. It usually points
// back at the purchase request it was converted from; a standalone RFQ can
// leave that reference empty until it is sent.
type RequestForQuotation struct {
	ID              string     `json:"id,omitempty"`
	URL             string     `json:"url,omitempty"`
	PurchaseRequest Ref        `json:"purchase_request,omitempty"`
	ExpiryDate      string     `json:"expiry_date,omitempty"`
	Currency        Ref        `json:"currency"`
	Vendor          Ref        `json:"vendor"`
	Items           []LineItem `json:"items"`
	Status          string     `json:"status"`
	IsHidden        bool       `json:"is_hidden"`
}

func (rfq RequestForQuotation) DocumentID() string {
	if rfq.ID != "" {
		return rfq.ID
	}
	return ExtractID(rfq.URL)
}

func (RequestForQuotation) DocumentType() DocType { return DocRequestForQuotation }

func (rfq RequestForQuotation) LineItems() []LineItem { return rfq.Items }

func (rfq RequestForQuotation) RequiredRefs() map[string]Ref {
	return map[string]Ref{
		"vendor":           rfq.Vendor,
		"currency":         rfq.Currency,
		"purchase_request": rfq.PurchaseRequest,
	}
}

func (rfq RequestForQuotation) WireStatus() string { return rfq.Status }

func (rfq RequestForQuotation) Summarize() Summary {
	return Summary{
		ID:       rfq.DocumentID(),
		URL:      rfq.URL,
		Title:    rfq.ExpiryDate,
		Vendor:   rfq.Vendor,
		Currency: rfq.Currency,
		Status:   rfq.Status,
		IsHidden: rfq.IsHidden,
	}
}

package models

// PurchaseRequest is the first document of the procurement chain. Once
// approved it can be converted into a request for quotation.
type PurchaseRequest struct {
	ID                 string     `json:"id,omitempty"`
	URL                string     `json:"url,omitempty"`
	Purpose            string     `json:"purpose"`
	Currency           Ref        `json:"currency"`
	Vendor             Ref        `json:"vendor,omitempty"`
	RequestingLocation Ref        `json:"requesting_location"`
	Items              []LineItem `json:"items"`
	Status             string     `json:"status"`
	IsHidden           bool       `json:"is_hidden"`
}

func (pr PurchaseRequest) DocumentID() string {
	if pr.ID != "" {
		return pr.ID
	}
	return ExtractID(pr.URL)
}

func (PurchaseRequest) DocumentType() DocType { return DocPurchaseRequest }

func (pr PurchaseRequest) LineItems() []LineItem { return pr.Items }

func (pr PurchaseRequest) RequiredRefs() map[string]Ref {
	return map[string]Ref{
		"vendor":              pr.Vendor,
		"currency":            pr.Currency,
		"requesting_location": pr.RequestingLocation,
	}
}

func (pr PurchaseRequest) WireStatus() string { return pr.Status }

func (pr PurchaseRequest) Summarize() Summary {
	return Summary{
		ID:       pr.DocumentID(),
		URL:      pr.URL,
		Title:    pr.Purpose,
		Vendor:   pr.Vendor,
		Currency: pr.Currency,
		Status:   pr.Status,
		IsHidden: pr.IsHidden,
	}
}

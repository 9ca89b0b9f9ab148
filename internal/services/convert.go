package services

import "github.com/fastrasuites/fastra-procure-go/internal/models"

// PRToRFQ projects an approved purchase request into a draft request for
// quotation. Vendor and currency carry over, items carry over with their ids
// stripped (they become new RFQ line items) and unit prices cleared so the
// vendor can quote them. Fields the source never had stay empty; the
// pre-submit gate catches them later, never the mapper.
func PRToRFQ(pr models.PurchaseRequest) models.RequestForQuotation {
	items := make([]models.LineItem, 0, len(pr.Items))
	for _, it := range pr.Items {
		it.ID = ""
		it.EstimatedUnitPrice = 0
		items = append(items, it)
	}
	source := pr.URL
	if source == "" {
		source = pr.ID
	}
	return models.RequestForQuotation{
		PurchaseRequest: models.NewRef(source),
		Currency:        pr.Currency,
		Vendor:          pr.Vendor,
		Items:           items,
		Status:          string(models.StatusDraft),
		IsHidden:        true,
	}
}

// RFQToPO projects a completed RFQ into a draft purchase order. Vendor and
// currency carry over, the order points back at the RFQ, items keep their
// quantities and quoted unit prices.
func RFQToPO(rfq models.RequestForQuotation) models.PurchaseOrder {
	items := make([]models.LineItem, 0, len(rfq.Items))
	for _, it := range rfq.Items {
		it.ID = ""
		items = append(items, it)
	}
	source := rfq.URL
	if source == "" {
		source = rfq.ID
	}
	return models.PurchaseOrder{
		RelatedRFQ: models.NewRef(source),
		Vendor:     rfq.Vendor,
		Currency:   rfq.Currency,
		Items:      items,
		Status:     string(models.StatusDraft),
		IsHidden:   true,
	}
}

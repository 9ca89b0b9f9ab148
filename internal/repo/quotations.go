package repo

import (
	"github.com/fastrasuites/fastra-procure-go/internal/cache"
	"github.com/fastrasuites/fastra-procure-go/internal/models"
	"github.com/fastrasuites/fastra-procure-go/internal/services"
)

// Quotations is the repository for requests for quotation.
type Quotations struct {
	docRepo[models.RequestForQuotation]
}

func NewQuotations(provider ClientProvider, c *cache.ListCache) *Quotations {
	return &Quotations{docRepo[models.RequestForQuotation]{
		provider: provider,
		docType:  models.DocRequestForQuotation,
		cache:    c,
	}}
}

// DraftFromPurchaseRequest pre-fills an RFQ draft from an approved purchase
// request. Pure projection; creation is a separate Create call.
func (*Quotations) DraftFromPurchaseRequest(pr models.PurchaseRequest) models.RequestForQuotation {
	return services.PRToRFQ(pr)
}

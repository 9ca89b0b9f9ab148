package repo

import (
	"context"

	"github.com/fastrasuites/fastra-procure-go/internal/cache"
	"github.com/fastrasuites/fastra-procure-go/internal/httpx"
	"github.com/fastrasuites/fastra-procure-go/internal/models"
	"github.com/fastrasuites/fastra-procure-go/internal/services"
)

// PurchaseOrders is the repository for purchase orders. It is the only kind
// whose rejection can be reversed back to draft.
type PurchaseOrders struct {
	docRepo[models.PurchaseOrder]
}

func NewPurchaseOrders(provider ClientProvider, c *cache.ListCache) *PurchaseOrders {
	return &PurchaseOrders{docRepo[models.PurchaseOrder]{
		provider: provider,
		docType:  models.DocPurchaseOrder,
		cache:    c,
	}}
}

// DraftFromQuotation pre-fills an order draft from a completed RFQ.
func (*PurchaseOrders) DraftFromQuotation(rfq models.RequestForQuotation) models.PurchaseOrder {
	return services.RFQToPO(rfq)
}

// Reset returns a rejected order to draft.
func (r *PurchaseOrders) Reset(ctx context.Context, id string, doc models.PurchaseOrder) (httpx.Result[models.PurchaseOrder], error) {
	return r.Transition(ctx, services.ActionReset, id, doc)
}

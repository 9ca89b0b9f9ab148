package repo

import (
	"github.com/fastrasuites/fastra-procure-go/internal/cache"
	"github.com/fastrasuites/fastra-procure-go/internal/models"
)

// PurchaseRequests is the repository for purchase requests.
type PurchaseRequests struct {
	docRepo[models.PurchaseRequest]
}

func NewPurchaseRequests(provider ClientProvider, c *cache.ListCache) *PurchaseRequests {
	return &PurchaseRequests{docRepo[models.PurchaseRequest]{
		provider: provider,
		docType:  models.DocPurchaseRequest,
		cache:    c,
	}}
}

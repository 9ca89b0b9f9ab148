package cache

import (
	"fmt"
	"testing"

	"github.com/fastrasuites/fastra-procure-go/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := OpenStore(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func sums(ids ...string) []models.Summary {
	out := make([]models.Summary, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Summary{ID: id, Status: "draft", IsHidden: true})
	}
	return out
}

func TestListCache_ReplaceIdempotent(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocPurchaseRequest, sums("PR1", "PR2"))
	c.Replace(models.DocPurchaseRequest, sums("PR1", "PR2"))

	items, stale := c.List(models.DocPurchaseRequest)
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2 (no duplicates)", len(items))
	}
	if stale {
		t.Error("freshly replaced list must not be stale")
	}
}

func TestListCache_PatchOnlyThatEntry(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocRequestForQuotation, []models.Summary{
		{ID: "RFQ1", Status: "awaiting"},
		{ID: "RFQ2", Status: "awaiting"},
	})
	if !c.Patch(models.DocRequestForQuotation, models.Summary{ID: "RFQ1", Status: "cancelled"}) {
		t.Fatal("Patch() = false, want true")
	}
	items, _ := c.List(models.DocRequestForQuotation)
	if items[0].Status != "cancelled" {
		t.Errorf("items[0].Status = %q", items[0].Status)
	}
	if items[1].Status != "awaiting" {
		t.Errorf("items[1].Status = %q, other entries must be untouched", items[1].Status)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, patch must not remove entries", len(items))
	}
}

func TestListCache_PatchStatusKeepsOtherFields(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocRequestForQuotation, []models.Summary{
		{ID: "RFQ1", Status: "awaiting", Title: "2026-09-30", Vendor: models.NewRef("V1")},
	})
	if !c.PatchStatus(models.DocRequestForQuotation, "RFQ1", "cancelled", false) {
		t.Fatal("PatchStatus() = false, want true")
	}
	items, _ := c.List(models.DocRequestForQuotation)
	if items[0].Status != "cancelled" {
		t.Errorf("Status = %q", items[0].Status)
	}
	if items[0].Title != "2026-09-30" || items[0].Vendor.ID() != "V1" {
		t.Errorf("other fields must survive a status patch: %+v", items[0])
	}
}

func TestListCache_PatchUnknownID(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocPurchaseOrder, sums("PO1"))
	if c.Patch(models.DocPurchaseOrder, models.Summary{ID: "PO9", Status: "completed"}) {
		t.Error("patching an unknown id must be a no-op")
	}
}

func TestListCache_Remove(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocPurchaseRequest, sums("PR1", "PR2", "PR3"))
	c.Remove(models.DocPurchaseRequest, "PR2")
	items, _ := c.List(models.DocPurchaseRequest)
	if len(items) != 2 || items[0].ID != "PR1" || items[1].ID != "PR3" {
		t.Errorf("items = %+v", items)
	}
}

func TestListCache_CopyOnRead(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocPurchaseRequest, sums("PR1"))
	items, _ := c.List(models.DocPurchaseRequest)
	items[0].Status = "mangled"
	again, _ := c.List(models.DocPurchaseRequest)
	if again[0].Status != "draft" {
		t.Error("List must return a copy, not the cached slice")
	}
}

func TestListCache_ShadowPersistence(t *testing.T) {
	store := openTestStore(t)
	c := New(store)
	c.Replace(models.DocPurchaseRequest, sums("PR1", "PR2"))
	c.Append(models.DocPurchaseOrder, models.Summary{ID: "PO1", Status: "draft"})

	// A fresh cache over the same store starts from the persisted lists,
	// marked stale until the next fetch.
	reloaded := New(store)
	prs, stale := reloaded.List(models.DocPurchaseRequest)
	if len(prs) != 2 || prs[0].ID != "PR1" || prs[1].ID != "PR2" {
		t.Errorf("reloaded purchase requests = %+v", prs)
	}
	if !stale {
		t.Error("reloaded list must be flagged stale")
	}
	pos, _ := reloaded.List(models.DocPurchaseOrder)
	if len(pos) != 1 || pos[0].ID != "PO1" {
		t.Errorf("reloaded purchase orders = %+v", pos)
	}
}

func TestListCache_MarkStale(t *testing.T) {
	c := New(nil)
	c.Replace(models.DocPurchaseRequest, sums("PR1"))
	c.MarkStale(models.DocPurchaseRequest)
	if _, stale := c.List(models.DocPurchaseRequest); !stale {
		t.Error("expected stale flag after MarkStale")
	}
}

func TestListCache_EmptyKind(t *testing.T) {
	c := New(nil)
	items, stale := c.List(models.DocPurchaseOrder)
	if items != nil || !stale {
		t.Errorf("List() = %v, %v; want nil, true", items, stale)
	}
}

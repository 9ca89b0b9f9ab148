package cache

import (
	"log"
	"sync"

	"github.com/fastrasuites/fastra-procure-go/internal/models"
)

type record struct {
	items []models.Summary
	stale bool
}

// ListCache mirrors the last fetched list per document type. All methods are
// safe for concurrent use; mutations run on the caller's goroutine at call
// completion, so ordering hazards reduce to last-write-wins.
type ListCache struct {
	mu    sync.RWMutex
	lists map[models.DocType]*record
	store *Store
}

// New builds a cache, optionally backed by a shadow store. When a store is
// given, whatever it remembers seeds the cache (marked stale) so a reload
// shows the previous lists while fresh ones are fetched.
func New(store *Store) *ListCache {
	c := &ListCache{lists: make(map[models.DocType]*record), store: store}
	if store != nil {
		persisted, err := store.loadAll()
		if err != nil {
			log.Printf("cache: could not load shadow store: %v", err)
			return c
		}
		for dt, items := range persisted {
			c.lists[dt] = &record{items: items, stale: true}
		}
	}
	return c
}

// List returns a copy of the cached list and whether it is stale. The second
// return is true when nothing was ever cached.
func (c *ListCache) List(dt models.DocType) (items []models.Summary, stale bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.lists[dt]
	if !ok {
		return nil, true
	}
	out := make([]models.Summary, len(rec.items))
	copy(out, rec.items)
	return out, rec.stale
}

// Replace swaps in a freshly fetched list and clears the staleness flag.
func (c *ListCache) Replace(dt models.DocType, items []models.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]models.Summary, len(items))
	copy(copied, items)
	c.lists[dt] = &record{items: copied}
	c.persist(dt)
}

// Append adds a newly created document to the end of the cached list.
func (c *ListCache) Append(dt models.DocType, sum models.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.lists[dt]
	if !ok {
		rec = &record{}
		c.lists[dt] = rec
	}
	rec.items = append(rec.items, sum)
	c.persist(dt)
}

// Patch merges an updated document into its cached entry by id, keeping its
// position. Unknown ids are left alone; the next refresh will pick them up.
func (c *ListCache) Patch(dt models.DocType, sum models.Summary) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.lists[dt]
	if !ok {
		return false
	}
	for i := range rec.items {
		if rec.items[i].ID == sum.ID {
			rec.items[i] = sum
			c.persist(dt)
			return true
		}
	}
	return false
}

// PatchStatus merges a status transition into the cached entry by id,
// leaving every other field of the entry alone.
func (c *ListCache) PatchStatus(dt models.DocType, id, wireStatus string, hidden bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.lists[dt]
	if !ok {
		return false
	}
	for i := range rec.items {
		if rec.items[i].ID == id {
			rec.items[i].Status = wireStatus
			rec.items[i].IsHidden = hidden
			c.persist(dt)
			return true
		}
	}
	return false
}

// Remove drops a document from the cached list, used after soft deletes.
func (c *ListCache) Remove(dt models.DocType, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.lists[dt]
	if !ok {
		return
	}
	kept := rec.items[:0]
	for _, it := range rec.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	rec.items = kept
	c.persist(dt)
}

// MarkStale flags a list so readers know a refresh is due.
func (c *ListCache) MarkStale(dt models.DocType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.lists[dt]; ok {
		rec.stale = true
	}
}

// persist writes the current list through to the shadow store. Failures are
// logged and swallowed: the store is a convenience, never the record.
func (c *ListCache) persist(dt models.DocType) {
	if c.store == nil {
		return
	}
	rec := c.lists[dt]
	if err := c.store.saveList(dt, rec.items); err != nil {
		log.Printf("cache: persist %s list: %v", dt, err)
	}
}

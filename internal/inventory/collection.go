// ABOUTME: Merged view over the remote baseline and the local overlay journal
// ABOUTME: Enforces id uniqueness and keeps session-only shadows for remote records

package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/brightcart/storefront/internal/catalog"
)

// Fetcher supplies the remote baseline. Satisfied by *catalog.Client.
type Fetcher interface {
	FetchAll(ctx context.Context) []catalog.Product
}

// Collection merges the remote baseline with the local overlay into one
// id-unique product collection. Local entries come first, newest first.
//
// Remote records are never durably mutated: edits and deletes against a
// remote-origin id are held as session shadows that vanish on the next
// session. Local records dispatch to the overlay journal.
type Collection struct {
	mu       sync.Mutex
	overlay  *Overlay
	source   Fetcher
	baseline []catalog.Product
	shadows  map[string]catalog.Product
	hidden   map[string]bool
	closed   bool
	logger   *slog.Logger
}

// NewCollection creates a merged collection over the given overlay and
// remote source. The baseline is empty until Refresh succeeds.
func NewCollection(overlay *Overlay, source Fetcher) *Collection {
	return &Collection{
		overlay: overlay,
		source:  source,
		shadows: make(map[string]catalog.Product),
		hidden:  make(map[string]bool),
		logger:  slog.Default().With("component", "inventory"),
	}
}

// Refresh fetches the remote baseline and swaps it in. The fetch may
// suspend; in-memory reads and mutations proceed against resident state
// meanwhile. If two refreshes overlap, the later-settling one wins. A
// result that settles after Close is discarded rather than reviving a
// torn-down collection.
func (c *Collection) Refresh(ctx context.Context) {
	fetched := c.source.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Debug("discarding fetch result after close")
		return
	}
	if len(fetched) == 0 && len(c.baseline) > 0 {
		// Failed fetch: keep the previously cached baseline
		return
	}
	c.baseline = fetched
}

// All returns the merged collection: overlay entries (newest first)
// followed by baseline entries in fetch order, with session shadows
// applied and exactly one entry per id.
func (c *Collection) All() []catalog.Product {
	local := c.overlay.Products()

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(local)+len(c.baseline))
	out := make([]catalog.Product, 0, len(local)+len(c.baseline))

	for _, p := range local {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}

	for _, p := range c.baseline {
		// Local entries win id collisions
		if seen[p.ID] || c.hidden[p.ID] {
			continue
		}
		if shadow, ok := c.shadows[p.ID]; ok {
			p = shadow
		}
		seen[p.ID] = true
		out = append(out, p)
	}

	return out
}

// Get returns the merged entry with the given id.
func (c *Collection) Get(id string) (catalog.Product, bool) {
	for _, p := range c.All() {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// Add creates a new local product and returns the stored record.
func (c *Collection) Add(payload AddPayload) catalog.Product {
	return c.overlay.Add(payload)
}

// Update applies patch to the entry with the given id. Local-origin ids go
// through the overlay journal; remote-origin ids get a session-only shadow
// that is never persisted back to the remote source.
func (c *Collection) Update(id string, patch Patch) {
	if c.overlay.Has(id) {
		c.overlay.Update(id, patch)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	base, ok := c.shadows[id]
	if !ok {
		for _, p := range c.baseline {
			if p.ID == id {
				base = p
				ok = true
				break
			}
		}
	}
	if !ok {
		c.logger.Debug("update against unknown id ignored", "id", id)
		return
	}

	patch.apply(&base)
	c.shadows[id] = base
}

// Delete removes the entry with the given id from the merged view. Local
// entries are removed from the journal; remote entries are hidden for the
// remainder of the session, since the remote source cannot be mutated.
func (c *Collection) Delete(id string) {
	if c.overlay.Has(id) {
		c.overlay.Remove(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.hidden[id] = true
	delete(c.shadows, id)
}

// Close marks the collection torn down. Refresh results settling after
// Close are discarded.
func (c *Collection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// ABOUTME: Durable journal of products created or edited on this client
// ABOUTME: Write-through to the persistence gateway under the product overlay key

package inventory

import (
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/persist"
)

// localIDPrefix namespaces locally created ids away from the remote
// service's numeric ids.
const localIDPrefix = "local-"

// defaultCategory is assigned when a new product arrives without one.
const defaultCategory = "uncategorized"

// AddPayload carries the fields for a new local product. Zero values are
// coerced to safe defaults rather than rejected.
type AddPayload struct {
	Title       string
	Price       float64
	Category    string
	Description string
	Image       string
}

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Price       *float64
	Category    *string
	Description *string
	Image       *string
}

// apply overwrites the non-nil fields of the patch onto p.
func (patch Patch) apply(p *catalog.Product) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Price != nil {
		p.Price = coercePrice(*patch.Price)
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
}

// coercePrice maps invalid prices to 0, favoring availability over rejection.
func coercePrice(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

// Overlay is the journal of locally created products, newest first. The
// in-memory slice is authoritative; every mutation is mirrored to the
// gateway so the journal survives a reload.
type Overlay struct {
	mu       sync.Mutex
	gateway  persist.Gateway
	products []catalog.Product
	logger   *slog.Logger
}

// NewOverlay loads the journal persisted under the product overlay key.
// A missing or undecodable value starts an empty journal.
func NewOverlay(gateway persist.Gateway) *Overlay {
	return &Overlay{
		gateway:  gateway,
		products: persist.Load(gateway, persist.KeyProducts, []catalog.Product{}),
		logger:   slog.Default().With("component", "overlay"),
	}
}

// Add creates a new local product from payload, assigns it a fresh
// namespaced id, persists the journal, and returns the stored record.
func (o *Overlay) Add(payload AddPayload) catalog.Product {
	p := catalog.Product{
		ID:          localIDPrefix + uuid.NewString(),
		Title:       payload.Title,
		Price:       coercePrice(payload.Price),
		Category:    payload.Category,
		Description: payload.Description,
		Image:       payload.Image,
		Origin:      catalog.OriginLocal,
	}
	if p.Category == "" {
		p.Category = defaultCategory
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// Newest first
	o.products = append([]catalog.Product{p}, o.products...)
	o.saveLocked()

	o.logger.Debug("product added", "id", p.ID, "title", p.Title)
	return p
}

// Update applies patch to the journal entry with the given id. Ids outside
// the local namespace are a no-op here; the merged collection handles
// session shadows for remote records.
func (o *Overlay) Update(id string, patch Patch) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.products {
		if o.products[i].ID == id {
			patch.apply(&o.products[i])
			o.saveLocked()
			return
		}
	}
}

// Remove deletes the journal entry with the given id, if present.
func (o *Overlay) Remove(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.products {
		if o.products[i].ID == id {
			o.products = append(o.products[:i], o.products[i+1:]...)
			o.saveLocked()
			return
		}
	}
}

// Has reports whether id is present in the journal.
func (o *Overlay) Has(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.products {
		if o.products[i].ID == id {
			return true
		}
	}
	return false
}

// Products returns a copy of the journal, newest first.
func (o *Overlay) Products() []catalog.Product {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]catalog.Product, len(o.products))
	copy(out, o.products)
	return out
}

// saveLocked mirrors the journal to the gateway. Must be called with mu held.
func (o *Overlay) saveLocked() {
	persist.Save(o.gateway, persist.KeyProducts, o.products)
}

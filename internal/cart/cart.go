// ABOUTME: Per-session cart ledger keyed by product id with price snapshots
// ABOUTME: Write-through to the persistence gateway so the cart survives a reload

package cart

import (
	"log/slog"
	"sync"

	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/persist"
)

// Line is one cart entry. Title, price, and image are copied from the
// product at insertion time; the price is not re-synced if the catalog
// price later changes.
type Line struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the running quantity ledger, one line per distinct product id.
// The in-memory lines are authoritative; every mutation mirrors them to
// the gateway.
type Cart struct {
	mu      sync.Mutex
	gateway persist.Gateway
	lines   []Line
	logger  *slog.Logger
}

// New loads the cart persisted under the cart key. A missing or
// undecodable value starts an empty cart.
func New(gateway persist.Gateway) *Cart {
	return &Cart{
		gateway: gateway,
		lines:   persist.Load(gateway, persist.KeyCart, []Line{}),
		logger:  slog.Default().With("component", "cart"),
	}
}

// AddItem increments the line for p by one, inserting a quantity-1 line
// with snapshotted title/price/image if none exists.
func (c *Cart) AddItem(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			c.saveLocked()
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	c.saveLocked()
}

// RemoveItem deletes the line with the given product id entirely.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.saveLocked()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity below 1 removes the
// line entirely.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			c.saveLocked()
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = []Line{}
	c.saveLocked()
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice sums price times quantity over all lines. No rounding is
// applied until presentation.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// TotalItems sums line quantities, for the header badge.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// saveLocked mirrors the lines to the gateway. Must be called with mu held.
func (c *Cart) saveLocked() {
	persist.Save(c.gateway, persist.KeyCart, c.lines)
}

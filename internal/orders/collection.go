// ABOUTME: Persisted order collection with status lifecycle and dashboard aggregates
// ABOUTME: Seeds demo orders exactly once, then treats them as durable data

package orders

import (
	"context"
	"log/slog"
	"sync"

	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/persist"
)

// Collection holds the durable order set. The in-memory slice is
// authoritative for the session; every mutation writes through to the
// gateway.
type Collection struct {
	mu      sync.Mutex
	gateway persist.Gateway
	orders  []Order
	logger  *slog.Logger
}

// NewCollection loads whatever order set is persisted under the order key.
func NewCollection(gateway persist.Gateway) *Collection {
	return &Collection{
		gateway: gateway,
		orders:  persist.Load(gateway, persist.KeyOrders, []Order{}),
		logger:  slog.Default().With("component", "orders"),
	}
}

// EnsureSeeded generates and persists demo orders if none are stored yet.
// products supplies the line-item pool; when it is empty the seeder falls
// back to a fresh remote fetch. Calling this again is a no-op, so the
// seeded batch is stable across sessions.
func (c *Collection) EnsureSeeded(ctx context.Context, seeder *Seeder, products []catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.orders) > 0 {
		return
	}

	seeded := seeder.Generate(ctx, products)
	if len(seeded) == 0 {
		c.logger.Warn("order seeding produced no orders, leaving collection empty")
		return
	}

	c.orders = seeded
	c.saveLocked()
	c.logger.Info("seeded demo orders", "count", len(seeded))
}

// Orders returns a copy of the order set in stored order.
func (c *Collection) Orders() []Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Get returns the order with the given id.
func (c *Collection) Get(id string) (Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// SetStatus moves the order directly to status, regardless of its current
// state; there is no forward-only workflow and no terminal state. The
// change is persisted immediately. An unknown id is a logged no-op.
func (c *Collection) SetStatus(id string, status Status) {
	if !status.Valid() {
		c.logger.Warn("ignoring unknown order status", "id", id, "status", status)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.orders {
		if c.orders[i].ID == id {
			c.orders[i].Status = status
			c.saveLocked()
			return
		}
	}
	c.logger.Warn("status change for unknown order ignored", "id", id)
}

// StatusCounts returns the number of orders in each status.
func (c *Collection) StatusCounts() map[Status]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts := map[Status]int{
		StatusPending:   0,
		StatusShipped:   0,
		StatusDelivered: 0,
	}
	for _, o := range c.orders {
		counts[o.Status]++
	}
	return counts
}

// Revenue sums all order totals, for the dashboard.
func (c *Collection) Revenue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, o := range c.orders {
		sum += o.Total
	}
	return sum
}

// saveLocked mirrors the order set to the gateway. Must be called with mu held.
func (c *Collection) saveLocked() {
	persist.Save(c.gateway, persist.KeyOrders, c.orders)
}

// ABOUTME: Deterministic-on-first-run generator of demonstration orders
// ABOUTME: Takes an injectable random source so tests can pin the generated batch

package orders

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brightcart/storefront/internal/catalog"
)

// DefaultSeedCount is how many demo orders a fresh install gets.
const DefaultSeedCount = 8

// sampleCustomers is the fixed roster demo orders draw from.
var sampleCustomers = []Customer{
	{Name: "Alice Johnson", Email: "alice@example.com"},
	{Name: "Mark Chen", Email: "mark@example.com"},
	{Name: "Sara Khan", Email: "sara@example.com"},
	{Name: "John Smith", Email: "john@example.com"},
}

// Fetcher supplies products when the resident collection is empty.
// Satisfied by *catalog.Client.
type Fetcher interface {
	FetchAll(ctx context.Context) []catalog.Product
}

// Seeder generates synthetic orders. The production path passes a
// time-seeded rand; tests pass a fixed seed for reproducible batches.
type Seeder struct {
	rng     *rand.Rand
	fetcher Fetcher
	count   int
	now     func() time.Time
	logger  *slog.Logger
}

// NewSeeder creates a seeder drawing randomness from rng and falling back
// to fetcher when no products are resident. A zero count means
// DefaultSeedCount.
func NewSeeder(fetcher Fetcher, rng *rand.Rand, count int) *Seeder {
	if count <= 0 {
		count = DefaultSeedCount
	}
	return &Seeder{
		rng:     rng,
		fetcher: fetcher,
		count:   count,
		now:     time.Now,
		logger:  slog.Default().With("component", "seeder"),
	}
}

// Generate produces the demo order batch. Each order draws 1-4 line items
// from products (quantities 1-3), a customer from the fixed roster, a
// status, and a creation time within the last 14 days. Totals satisfy the
// order invariant. Returns nil when no products are available at all.
func (s *Seeder) Generate(ctx context.Context, products []catalog.Product) []Order {
	if len(products) == 0 && s.fetcher != nil {
		products = s.fetcher.FetchAll(ctx)
	}
	if len(products) == 0 {
		s.logger.Warn("no products available for order seeding")
		return nil
	}

	now := s.now()
	orders := make([]Order, 0, s.count)
	for i := 0; i < s.count; i++ {
		itemCount := s.intn(1, 4)
		items := make([]Item, 0, itemCount)
		for j := 0; j < itemCount; j++ {
			prod := products[s.rng.Intn(len(products))]
			items = append(items, Item{
				ID:       prod.ID,
				Title:    prod.Title,
				Price:    prod.Price,
				Quantity: s.intn(1, 3),
			})
		}

		orders = append(orders, Order{
			ID:        fmt.Sprintf("ord-%d-%d", now.UnixMilli(), i),
			Customer:  sampleCustomers[s.rng.Intn(len(sampleCustomers))],
			Items:     items,
			Total:     itemTotal(items),
			Status:    Statuses[s.rng.Intn(len(Statuses))],
			CreatedAt: now.AddDate(0, 0, -s.intn(0, 14)),
			Address:   fmt.Sprintf("%d Market St, Cityville", s.intn(100, 999)),
		})
	}
	return orders
}

// intn returns a random integer in [min, max], inclusive both ends.
func (s *Seeder) intn(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

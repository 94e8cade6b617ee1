// ABOUTME: Order model and status constants for the back office
// ABOUTME: Totals always satisfy total == round2(sum of price * quantity)

package orders

import (
	"math"
	"time"
)

// Status is an order's fulfillment state. Transitions are unconstrained:
// any status may move directly to any other.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// Statuses lists every valid status, in workflow order.
var Statuses = []Status{StatusPending, StatusShipped, StatusDelivered}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Customer identifies who placed an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Item is one order line, price-snapshotted at order time.
type Item struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a persisted order record. Orders are created by the seeder,
// mutated only through SetStatus, and never deleted.
type Order struct {
	ID        string    `json:"id"`
	Customer  Customer  `json:"customer"`
	Items     []Item    `json:"items"`
	Total     float64   `json:"total"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Address   string    `json:"address"`
}

// itemTotal computes the rounded total for a set of items.
func itemTotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return round2(sum)
}

// round2 rounds to two decimal places for presentation-stable totals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

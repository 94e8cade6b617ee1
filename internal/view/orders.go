// ABOUTME: Order-specific predicates and sort tables for the view engine
// ABOUTME: Backs the order management table's column sorting and status filter

package view

import (
	"cmp"
	"strings"

	"github.com/brightcart/storefront/internal/orders"
)

// Order table sort fields.
const (
	FieldCustomer = "customer"
	FieldTotal    = "total"
	FieldDate     = "date"
)

// OrderStatus matches one fulfillment status exactly. Empty means no filter.
func OrderStatus(status orders.Status) Predicate[orders.Order] {
	return func(o orders.Order) bool {
		return status == "" || o.Status == status
	}
}

// OrderSort maps an order table column and direction to its comparator.
// Unrecognized fields return nil, preserving insertion order.
func OrderSort(field string, dir Direction) Comparator[orders.Order] {
	switch field {
	case FieldCustomer:
		return Directed(byCustomer, dir)
	case FieldTotal:
		return Directed(byTotal, dir)
	case FieldDate:
		return Directed(byDate, dir)
	default:
		return nil
	}
}

func byCustomer(a, b orders.Order) int {
	return strings.Compare(a.Customer.Name, b.Customer.Name)
}

func byTotal(a, b orders.Order) int {
	return cmp.Compare(a.Total, b.Total)
}

func byDate(a, b orders.Order) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

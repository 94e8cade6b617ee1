// ABOUTME: Product-specific predicates and sort tables for the view engine
// ABOUTME: Covers the storefront listing keys and the admin product table columns

package view

import (
	"cmp"
	"strings"

	"github.com/brightcart/storefront/internal/catalog"
)

// Storefront listing sort keys.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
	SortRating    = "rating"
)

// Admin product table sort fields.
const (
	FieldTitle    = "title"
	FieldCategory = "category"
	FieldPrice    = "price"
)

// Search matches a case-insensitive substring of the title or description.
// An empty query matches everything.
func Search(query string) Predicate[catalog.Product] {
	q := strings.ToLower(query)
	return func(p catalog.Product) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}
}

// Category matches an exact category name. Empty means no filter.
func Category(name string) Predicate[catalog.Product] {
	return func(p catalog.Product) bool {
		return name == "" || p.Category == name
	}
}

// PriceRange matches min <= price <= max, inclusive both ends.
func PriceRange(min, max float64) Predicate[catalog.Product] {
	return func(p catalog.Product) bool {
		return p.Price >= min && p.Price <= max
	}
}

// CatalogSort maps a storefront listing key to its comparator. An
// unrecognized key (including "featured") returns nil, preserving
// insertion order.
func CatalogSort(key string) Comparator[catalog.Product] {
	switch key {
	case SortPriceLow:
		return byPrice
	case SortPriceHigh:
		return Reverse(byPrice)
	case SortRating:
		// Highest rated first; a missing rating counts as 0
		return Reverse(byRating)
	default:
		return nil
	}
}

// ProductSort maps an admin table column and direction to its comparator.
// Unrecognized fields return nil.
func ProductSort(field string, dir Direction) Comparator[catalog.Product] {
	switch field {
	case FieldTitle:
		return Directed(byTitle, dir)
	case FieldCategory:
		return Directed(byCategory, dir)
	case FieldPrice:
		return Directed(byPrice, dir)
	default:
		return nil
	}
}

func byPrice(a, b catalog.Product) int {
	return cmp.Compare(a.Price, b.Price)
}

func byRating(a, b catalog.Product) int {
	return cmp.Compare(a.Rating.Rate, b.Rating.Rate)
}

func byTitle(a, b catalog.Product) int {
	return strings.Compare(a.Title, b.Title)
}

func byCategory(a, b catalog.Product) int {
	return strings.Compare(a.Category, b.Category)
}

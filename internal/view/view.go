// ABOUTME: Pure filter/sort/paginate engine shared by every list-rendering consumer
// ABOUTME: One parameterized implementation replaces per-screen copies of the same logic

package view

import "slices"

// Direction orders a sort ascending or descending.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Predicate reports whether an item belongs in the filtered view.
type Predicate[T any] func(T) bool

// Comparator orders two items. Negative means a before b. A nil Comparator
// leaves insertion order unchanged.
type Comparator[T any] func(a, b T) int

// Page is one window of an evaluated view plus pagination metadata.
type Page[T any] struct {
	Items      []T
	Count      int // items after filtering, before windowing
	Page       int // the clamped 1-indexed page actually returned
	TotalPages int
}

// Spec describes one evaluation: predicates are ANDed, the comparator is
// applied stably, then the page window is cut.
type Spec[T any] struct {
	Filters  []Predicate[T]
	Sort     Comparator[T]
	Page     int
	PageSize int
}

// Evaluate derives a windowed, ordered view of items. It never mutates its
// input and is deterministic: the sort is stable, so repeated evaluations
// of equal inputs yield identical pages.
func Evaluate[T any](items []T, spec Spec[T]) Page[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, spec.Filters) {
			filtered = append(filtered, item)
		}
	}

	if spec.Sort != nil {
		slices.SortStableFunc(filtered, spec.Sort)
	}

	return paginate(filtered, spec.Page, spec.PageSize)
}

func matchesAll[T any](item T, filters []Predicate[T]) bool {
	for _, keep := range filters {
		if !keep(item) {
			return false
		}
	}
	return true
}

// paginate cuts the 1-indexed page window, clamping an out-of-range page
// into [1, totalPages] instead of returning an empty slice.
func paginate[T any](items []T, page, size int) Page[T] {
	count := len(items)
	if size < 1 {
		size = 1
	}

	totalPages := (count + size - 1) / size

	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return Page[T]{
		Items:      items[start:end],
		Count:      count,
		Page:       page,
		TotalPages: totalPages,
	}
}

// Reverse flips a comparator for descending order.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Directed applies dir to cmp.
func Directed[T any](cmp Comparator[T], dir Direction) Comparator[T] {
	if dir == Desc {
		return Reverse(cmp)
	}
	return cmp
}

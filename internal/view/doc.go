// Package view derives filtered, sorted, paginated projections of a
// collection for display.
//
// Evaluate is pure and stateless: it takes the collection, the filter
// predicates, a comparator, and a page spec, and returns the window plus
// {count, totalPages} metadata. Consumers re-evaluate whenever any input
// changes. The product listing, the admin product table, and the admin
// order table all share this one engine instead of carrying their own
// copies of the same filter/sort/slice logic.
//
// Sorting is stable, so an unrecognized sort key (the "featured" default)
// preserves insertion order and repeated evaluations are deterministic.
// Page numbers are 1-indexed and clamped into the valid range rather than
// returning an out-of-bounds slice.
package view

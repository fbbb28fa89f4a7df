// Package box models the classic Composite exercise, a delivery order packed
// as a tree of boxes, the way Go prefers to write it.
//
// The textbook version builds a class hierarchy: a Box interface with
// calculatePrice(), leaf classes (Product, Book, VideoGame) and a CompositeBox
// that sums its children through virtual dispatch. The Go rendition keeps the
// tree and drops the hierarchy:
//
//   - Box is a tagged variant: either a single priced Item or a composite
//     holding child boxes. One concrete type, no interface, no dispatch.
//   - Pricing is a fold: Price walks the leaves and sums them. Grouping never
//     changes a total, only which leaves exist does.
//   - Trees are immutable once built. Constructors validate everything up
//     front (no negative prices, no zero-value boxes smuggled in as children),
//     so a Box that exists is a Box that prices cleanly.
//
// Traversal is exposed as a standard iterator (Items), so callers can fold,
// filter, or count leaves without the package growing a method per question.
//
// Prices are decimals, not floats: order totals are money, and summing money
// should be exact no matter how the tree is grouped.
package box

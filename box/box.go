package box

import (
	"errors"
	"iter"

	"github.com/shopspring/decimal"
)

// Box is one node of a packing tree: either a leaf holding a single Item or a
// composite holding child boxes.
//
// A Box is an immutable value. Build leaves with NewItem (or the per-category
// helpers) and composites with Compose; the zero value is not a valid Box and
// is rejected wherever it could enter a tree.
type Box struct {
	kind     kind
	item     Item
	children []Box
}

// kind discriminates the variant. The zero value deliberately maps to
// "uninitialized" so a forgotten constructor cannot masquerade as an empty
// composite.
type kind uint8

const (
	kindUninitialized kind = iota
	kindLeaf
	kindComposite
)

// ErrUninitializedBox is returned when a zero-value Box is used where a
// constructed one is required, e.g. as a child of Compose.
var ErrUninitializedBox = errors.New("box: uninitialized box")

// Compose packs the given boxes into one composite box.
//
// Compose() with no children is valid and prices to zero. Any zero-value
// child fails with ErrUninitializedBox: malformed trees are stopped at
// construction, not discovered during pricing.
func Compose(children ...Box) (Box, error) {
	for _, c := range children {
		if c.kind == kindUninitialized {
			return Box{}, ErrUninitializedBox
		}
	}
	// Copy so later mutation of a caller-held slice cannot reach the tree.
	kids := make([]Box, len(children))
	copy(kids, children)
	return Box{kind: kindComposite, children: kids}, nil
}

// Must unwraps a (Box, error) pair and panics on error.
//
// It keeps demo trees readable; real callers should handle the error.
func Must(b Box, err error) Box {
	if err != nil {
		panic(err)
	}
	return b
}

// IsZero reports whether b is the zero value rather than a constructed box.
func (b Box) IsZero() bool {
	return b.kind == kindUninitialized
}

// Items yields every leaf item in the tree, depth-first and left to right.
//
// A leaf yields itself; an empty composite yields nothing.
func (b Box) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		b.walk(yield)
	}
}

// walk drives the depth-first traversal. It reports whether iteration should
// continue.
func (b Box) walk(yield func(Item) bool) bool {
	switch b.kind {
	case kindLeaf:
		return yield(b.item)
	case kindComposite:
		for _, c := range b.children {
			if !c.walk(yield) {
				return false
			}
		}
	}
	return true
}

// Len returns the number of leaf items in the tree.
func (b Box) Len() int {
	n := 0
	for range b.Items() {
		n++
	}
	return n
}

// Price returns the total price of the tree: the sum of all leaf prices.
//
// For a leaf that is its own price; for a composite the fold visits every
// child recursively, so grouping never affects the total. An empty composite
// (and the zero Box) prices to zero. Price has no side effects and no error
// cases: everything that could go wrong was rejected at construction.
func (b Box) Price() decimal.Decimal {
	total := decimal.Zero
	for it := range b.Items() {
		total = total.Add(it.Price)
	}
	return total
}

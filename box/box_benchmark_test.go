package box_test

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sghaida/gopatterns/box"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func benchLeaves(n int) []box.Box {
	out := make([]box.Box, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, box.Must(box.NewProduct("p-"+strconv.Itoa(i), decimal.NewFromInt(int64(i)))))
	}
	return out
}

func benchFlatTree(n int) box.Box {
	return box.Must(box.Compose(benchLeaves(n)...))
}

// benchNestedTree groups n leaves into composites of 4 until one root remains.
func benchNestedTree(n int) box.Box {
	boxes := benchLeaves(n)
	for len(boxes) > 1 {
		var next []box.Box
		for i := 0; i < len(boxes); i += 4 {
			end := i + 4
			if end > len(boxes) {
				end = len(boxes)
			}
			next = append(next, box.Must(box.Compose(boxes[i:end]...)))
		}
		boxes = next
	}
	return boxes[0]
}

/*
   Benchmarks
*/

func BenchmarkPrice_Flat1000(b *testing.B) {
	tree := benchFlatTree(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Price()
	}
}

func BenchmarkPrice_Nested1000(b *testing.B) {
	tree := benchNestedTree(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Price()
	}
}

func BenchmarkItems_Traverse1000(b *testing.B) {
	tree := benchNestedTree(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range tree.Items() {
			n++
		}
		if n != 1000 {
			b.Fatalf("expected 1000 items, got %d", n)
		}
	}
}

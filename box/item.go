package box

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Category says what kind of article a leaf item is.
//
// The set mirrors the shop the demos sell from; pricing does not branch on it.
type Category uint8

const (
	// Product is the generic catalog article.
	Product Category = iota
	// Book is a printed article.
	Book
	// VideoGame is a boxed game.
	VideoGame
)

// String returns the category name used in logs and demo output.
func (c Category) String() string {
	switch c {
	case Product:
		return "product"
	case Book:
		return "book"
	case VideoGame:
		return "video-game"
	default:
		return "unknown"
	}
}

// Item is a single priced article placed in a box.
//
// Items are plain values; validation happens when one is boxed via NewItem
// (or the per-category helpers), never afterwards.
type Item struct {
	SKU      string
	Category Category
	Price    decimal.Decimal
}

// ErrEmptySKU is returned when an item is boxed without a SKU.
var ErrEmptySKU = errors.New("box: empty SKU")

// NegativePriceError is returned when an item is boxed with a price below zero.
//
// Prices are fixed, externally assigned amounts; a negative one is a caller
// bug, so it is rejected at construction rather than surfacing as a strange
// total later.
type NegativePriceError struct {
	SKU   string
	Price decimal.Decimal
}

// Error implements the error interface.
func (e NegativePriceError) Error() string {
	// Example: box: negative price -3 for SKU "42"
	return "box: negative price " + e.Price.String() + " for SKU " + strconv.Quote(e.SKU)
}

// NewItem wraps a single priced article in a leaf box.
//
// It fails with ErrEmptySKU or NegativePriceError when the item is malformed.
func NewItem(sku string, cat Category, price decimal.Decimal) (Box, error) {
	if sku == "" {
		return Box{}, ErrEmptySKU
	}
	if price.IsNegative() {
		return Box{}, NegativePriceError{SKU: sku, Price: price}
	}
	return Box{
		kind: kindLeaf,
		item: Item{SKU: sku, Category: cat, Price: price},
	}, nil
}

// NewProduct boxes a generic catalog article.
func NewProduct(sku string, price decimal.Decimal) (Box, error) {
	return NewItem(sku, Product, price)
}

// NewBook boxes a book.
func NewBook(sku string, price decimal.Decimal) (Box, error) {
	return NewItem(sku, Book, price)
}

// NewVideoGame boxes a video game.
func NewVideoGame(sku string, price decimal.Decimal) (Box, error) {
	return NewItem(sku, VideoGame, price)
}

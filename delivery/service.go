// Package delivery prices customer orders packed as box trees.
//
// Service is the thin orchestration layer from the Composite exercise: it owns
// the root box of the current order and answers one question, what the whole
// shipment costs. It holds no global state; construct one and pass it where it
// is needed.
package delivery

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sghaida/gopatterns/box"
	"github.com/sghaida/gopatterns/logging"
)

// Order is the record produced when a shipment is set up.
type Order struct {
	// ID is a fresh UUID assigned at setup.
	ID string
	// Boxes is the number of top-level boxes in the shipment.
	Boxes int
	// Items is the number of leaf items across the whole tree.
	Items int
	// Total is the order price: the sum of every leaf item's price.
	Total decimal.Decimal
	// CreatedAt is the setup time in UTC.
	CreatedAt time.Time
}

// Service prices orders packed as box trees.
//
// A Service is not safe for concurrent use: an order is set up, then queried.
type Service struct {
	log  *logging.Logger
	root box.Box
}

// NewService returns a Service pricing the given root box.
//
// A zero-value root is allowed and behaves as an empty order until SetupOrder
// replaces it. A nil logger falls back to the discarding logger.
func NewService(log *logging.Logger, root box.Box) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{log: log, root: root}
}

// SetupOrder packs the given boxes into a fresh composite root and returns the
// order record for it.
//
// The previous root is replaced. Construction failures (a zero-value box among
// the children) are reported before anything changes.
func (s *Service) SetupOrder(boxes ...box.Box) (Order, error) {
	root, err := box.Compose(boxes...)
	if err != nil {
		return Order{}, fmt.Errorf("delivery: setup order: %w", err)
	}
	s.root = root

	ord := Order{
		ID:        uuid.NewString(),
		Boxes:     len(boxes),
		Items:     root.Len(),
		Total:     root.Price(),
		CreatedAt: time.Now().UTC(),
	}
	s.log.Info("order set up",
		"order_id", ord.ID,
		"boxes", ord.Boxes,
		"items", ord.Items,
		"total", ord.Total,
	)
	return ord, nil
}

// OrderPrice returns the total price of the current root.
func (s *Service) OrderPrice() decimal.Decimal {
	return s.root.Price()
}

// Root returns the current root box.
func (s *Service) Root() box.Box {
	return s.root
}

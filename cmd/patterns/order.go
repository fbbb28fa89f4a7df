package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sghaida/gopatterns/app"
	"github.com/sghaida/gopatterns/box"
)

// newOrderCmd builds the order subcommand: compose the demo boxes, register
// them as an order, and print the receipt.
func newOrderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Compose a nested order of boxes and price it",
		Long: `Order composes the demo shipment: a box holding a keyboard next to an
inner box of two books, and a second box with a video game and a monitor.
It registers the boxes as one order and prints the itemized receipt.

The total is the same however the items are grouped; order prints it with
the configured currency code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			rt, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			boxes, err := demoBoxes()
			if err != nil {
				return err
			}
			order, err := rt.Delivery.SetupOrder(boxes...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "order %s: %d items in %d boxes\n", order.ID, order.Items, order.Boxes)
			for item := range rt.Delivery.Root().Items() {
				_, _ = fmt.Fprintf(out, "  %-22s %-12s %8s\n", item.SKU, item.Category, item.Price)
			}
			_, _ = fmt.Fprintf(out, "total: %s %s\n", order.Total, cfg.Delivery.Currency)
			return nil
		},
	}
}

// demoBoxes composes the demo shipment, two boxes deep on the left side.
func demoBoxes() ([]box.Box, error) {
	keyboard, err := box.NewProduct("kbd-tkl-87", decimal.NewFromInt(100))
	if err != nil {
		return nil, err
	}
	goBook, err := box.NewBook("book-go-in-practice", decimal.NewFromInt(200))
	if err != nil {
		return nil, err
	}
	dbBook, err := box.NewBook("book-designing-data", decimal.NewFromInt(300))
	if err != nil {
		return nil, err
	}
	game, err := box.NewVideoGame("game-hollow-knight", decimal.NewFromInt(400))
	if err != nil {
		return nil, err
	}
	monitor, err := box.NewProduct("monitor-27-4k", decimal.NewFromInt(500))
	if err != nil {
		return nil, err
	}

	books, err := box.Compose(goBook, dbBook)
	if err != nil {
		return nil, err
	}
	first, err := box.Compose(keyboard, books)
	if err != nil {
		return nil, err
	}
	second, err := box.Compose(game, monitor)
	if err != nil {
		return nil, err
	}
	return []box.Box{first, second}, nil
}

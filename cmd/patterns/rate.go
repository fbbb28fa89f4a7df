package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/gopatterns/app"
	"github.com/sghaida/gopatterns/policy"
)

// newRateCmd builds the rate subcommand: price both stock policy types for
// one account through the staged rater.
func newRateCmd(opts *rootOptions) *cobra.Command {
	var (
		account string
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Price the stock policy types",
		Long: `Rate prices the two stock policy types for one account. Each rater runs
the same fixed sequence (setup, assess, apply, report) with its own assess
and apply stages plugged in.

With --trace, every completed stage is printed with a snapshot of the
quote, showing the base appear and the premium derive from it.`,
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

			if account == "" {
				account = cfg.Policy.DefaultAccount
			}

			out := cmd.OutOrStdout()
			for _, rater := range []*policy.Rater{rt.CommercialAuto, rt.BusinessOwners} {
				var observers []policy.TraceFunc
				if trace {
					name := rater.Name()
					observers = append(observers, func(stage policy.Stage, q policy.Quote) {
						_, _ = fmt.Fprintf(out, "  %s/%-6s base=%s premium=%s\n", name, stage, q.Base, q.Premium)
					})
				}
				quote := rater.Price(account, observers...)
				_, _ = fmt.Fprintf(out, "%s: account %s rated at %s\n", rater.Name(), quote.Account, quote.Premium)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account to rate (default from config)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print each completed stage")
	return cmd
}

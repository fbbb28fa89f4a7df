package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sghaida/gopatterns/app"
)

// newBootCmd builds the boot subcommand: race goroutines through the first
// Runtime call and report how many runtimes were actually constructed.
func newBootCmd(opts *rootOptions) *cobra.Command {
	var goroutines int

	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Race goroutines through deferred startup",
		Long: `Boot defers runtime construction, then releases a group of goroutines at
the same instant so they all hit the first Runtime call together. However
many arrive, exactly one runtime is constructed and every caller gets it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if goroutines < 1 {
				return fmt.Errorf("patterns boot: --goroutines must be at least 1, got %d", goroutines)
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			boot, err := app.NewBoot(cfg)
			if err != nil {
				return err
			}

			runtimes := make([]*app.Runtime, goroutines)

			var start sync.WaitGroup
			start.Add(1)

			var eg errgroup.Group
			for i := range runtimes {
				eg.Go(func() error {
					start.Wait()
					runtimes[i] = boot.Runtime()
					return nil
				})
			}
			start.Done()
			if err := eg.Wait(); err != nil {
				return err
			}

			distinct := map[*app.Runtime]struct{}{}
			for _, rt := range runtimes {
				distinct[rt] = struct{}{}
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d goroutines raced the first call, %d runtime constructed\n",
				goroutines, len(distinct))
			if len(distinct) != 1 {
				return fmt.Errorf("patterns boot: expected one runtime, got %d", len(distinct))
			}
			boot.Runtime().Close()
			return nil
		},
	}

	cmd.Flags().IntVar(&goroutines, "goroutines", 8, "goroutines to race through startup")
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sghaida/gopatterns/config"
)

// rootOptions carries the persistent flag state shared by the subcommands.
type rootOptions struct {
	// configFile is the --config value; empty means "search the working
	// directory for the default file".
	configFile string

	// flags is the persistent flag set, kept so loadConfig can hand it to
	// the config loader for binding.
	flags *pflag.FlagSet
}

// loadConfig resolves the effective configuration: defaults, then config
// file, then environment, then flags.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if o.configFile != "" {
		loader.SetConfigFile(o.configFile)
	}
	if err := loader.BindFlags(o.flags); err != nil {
		return nil, err
	}
	return loader.Load()
}

// newRootCmd builds a fresh command tree.
//
// Building the tree per call keeps command state out of package globals, so
// tests can execute commands in parallel without sharing flag values.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Demos for the gopatterns packages",
		Long: `Patterns runs one small demo per subcommand: composing and pricing a
nested order of boxes, staged policy rating, and deferred once-only startup.

Quick start:
  patterns init       Write a default ` + config.DefaultFile + `
  patterns order      Compose a nested order and price it
  patterns rate       Price the stock policy types
  patterns boot       Race goroutines through deferred startup`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default "+config.DefaultFile+")")
	pf.String("log-mode", "", "logging mode (dev, prod)")
	pf.String("currency", "", "ISO 4217 code printed on order totals")
	opts.flags = pf

	root.AddCommand(
		newOrderCmd(opts),
		newRateCmd(opts),
		newBootCmd(opts),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

// run executes the CLI and returns a process exit code. It exists separately
// from main so tests can drive the binary without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "patterns:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

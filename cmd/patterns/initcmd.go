package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/gopatterns/config"
)

// newInitCmd builds the init subcommand: write a default config file for the
// other subcommands to pick up.
func newInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Init writes a config file populated with the defaults, ready to edit.
It refuses to overwrite a file that already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultFile, "where to write the config file")
	return cmd
}

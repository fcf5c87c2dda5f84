package cmd

import (
	"fnctl/internal/functionapp"

	"github.com/spf13/cobra"
)

func newRuntimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runtimes",
		Short: "List the runtime stacks and versions apps can be created with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, nil)
			if err != nil {
				return err
			}
			return printer.Runtimes(functionapp.DefaultCatalog)
		},
	}
}

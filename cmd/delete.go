package cmd

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a function app",
		Long:    `Marks a function app as deleted. The backend tears down the Azure resources.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			s := application.Services()
			printer, err := newPrinter(cmd, s.Location)
			if err != nil {
				return err
			}
			project, err := requireProject(application)
			if err != nil {
				return err
			}

			if res := s.Operations.Delete(cmd.Context(), project, args[0]); !res.OK() {
				return res.Err
			}
			return printer.Message("Deleted function app %s", args[0])
		},
	}
}

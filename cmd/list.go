package cmd

import (
	"fnctl/internal/functionapp"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the function apps of a project",
		Long: `Lists the live function apps of the selected project, sorted by name.
Soft-deleted apps are never shown. Use --search to filter by name.`,
		Args: cobra.NoArgs,
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

			if res := s.Operations.Fetch(cmd.Context(), project); !res.OK() {
				return res.Err
			}
			return printer.Apps(functionapp.Filter(s.Store.All(), search))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show apps whose name contains this text (case-insensitive)")
	return cmd
}

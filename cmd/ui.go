package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("fnctl ui needs an interactive terminal; use the list, create, publish and delete commands in scripts")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive function app panel",
		Long: `Opens a terminal UI listing the project's function apps. From the panel
you can search, expand rows, copy URLs, and create, publish or delete apps.
Press h for the key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.RunTUI(cmd.Context())
		},
	}
}

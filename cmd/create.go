package cmd

import (
	"fmt"

	"fnctl/internal/functionapp"

	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	var stack, version string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a function app",
		Long: `Creates a function app in the selected project. The runtime is chosen
from the catalog shown by 'fnctl runtimes' as a stack key and a version key.
Without --version the stack's default version is used.`,
		Example: `  fnctl create orders-api --stack node --version 20
  fnctl create billing --stack dotnet`,
		Args: cobra.ExactArgs(1),
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

			runtimeStack, ok := s.Catalog.Stack(stack)
			if !ok {
				return fmt.Errorf("%w: unknown stack %q", functionapp.ErrUnknownRuntime, stack)
			}
			if version == "" {
				version = runtimeStack.Default().Key
			}
			opt, err := s.Catalog.Resolve(stack, version)
			if err != nil {
				return err
			}

			req := functionapp.NewCreateRequest(args[0], opt)
			if res := s.Operations.Create(cmd.Context(), project, req); !res.OK() {
				return res.Err
			}
			created, ok := s.Store.Get(req.Name)
			if !ok {
				return printer.Message("Created function app %s", req.Name)
			}
			return printer.App(created)
		},
	}
	cmd.Flags().StringVar(&stack, "stack", functionapp.DefaultCatalog.DefaultStack().Key, "Runtime stack key")
	cmd.Flags().StringVar(&version, "version", "", "Runtime version key (defaults to the stack's first version)")
	return cmd
}

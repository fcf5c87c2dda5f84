package cmd

import (
	"fmt"

	"fnctl/pkg/logging"

	"github.com/spf13/cobra"
)

func newPublishCmd() *cobra.Command {
	var zipPath string
	cmd := &cobra.Command{
		Use:   "publish NAME",
		Short: "Publish a zip package to a function app",
		Long: `Uploads a zip package and records a publish for the function app. The
backend deploys the package. When a profile is configured it is saved with
the publish.`,
		Example: `  fnctl publish orders-api --zip ./dist/orders-api.zip`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if zipPath == "" {
				return fmt.Errorf("--zip is required")
			}
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
			name := args[0]

			file, err := s.Uploader.Upload(cmd.Context(), project, zipPath)
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}

			if profile := application.Settings().Profile; profile.ID != "" {
				if res := s.Operations.SaveProfile(cmd.Context(), profile); !res.OK() {
					logging.Warn("CLI", "profile was not saved: %v", res.Err)
				}
			}

			if res := s.Operations.Publish(cmd.Context(), project, name, file); !res.OK() {
				return res.Err
			}
			if published, ok := s.Store.Get(name); ok {
				return printer.App(published)
			}
			return printer.Message("Published %s to %s", file.Name, name)
		},
	}
	cmd.Flags().StringVar(&zipPath, "zip", "", "Path of the zip package to publish")
	return cmd
}

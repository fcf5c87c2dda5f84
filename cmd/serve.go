package cmd

import (
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the function app operations as MCP tools over stdio",
		Long: `Starts an MCP server on stdin/stdout exposing these tools:

  functionapp_list     list the apps of a project
  functionapp_create   create an app from the runtime catalog
  functionapp_delete   delete an app
  functionapp_publish  upload a zip and publish it to an app
  runtime_list         show the runtime catalog

Logs are written to stderr so they never corrupt the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.ServeMCP(cmd.Root().Version)
		},
	}
}

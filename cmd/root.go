package cmd

import (
	"fmt"
	"os"
	"time"

	"fnctl/internal/app"
	"fnctl/internal/output"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every subcommand.
var (
	configPath   string
	projectFlag  string
	debugFlag    bool
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fnctl",
		Short: "Provision and publish Azure Function Apps through the toolkit backend",
		Long: `fnctl manages the Azure Function Apps of a toolkit project: list them,
create new ones from the runtime catalog, publish zip packages and delete
apps you no longer need. Run 'fnctl ui' for the interactive panel or
'fnctl serve' to expose the same operations as MCP tools.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. backend failures)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := output.ParseFormat(outputFormat)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is layered ~/.config/fnctl and ./.fnctl)")
	cmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "toolkit project to act on")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newPublishCmd())
	cmd.AddCommand(newRuntimesCmd())
	cmd.AddCommand(newUICmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "fnctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication builds the application from the persistent flags. Tests
// replace it to point commands at a fake backend.
var newApplication = func() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(configPath, projectFlag, debugFlag))
}

func newPrinter(cmd *cobra.Command, loc *time.Location) (*output.Printer, error) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(format, cmd.OutOrStdout(), loc), nil
}

func requireProject(application *app.Application) (string, error) {
	project := application.Project()
	if project == "" {
		return "", fmt.Errorf("no project selected: pass --project or set project in the config file")
	}
	return project, nil
}

package cli

import (
	"fmt"

	"github.com/agentx-labs/create-react-app/internal/branding"
	"github.com/agentx-labs/create-react-app/internal/config"
	"github.com/agentx-labs/create-react-app/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <project-directory> [project-template]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a project directory with a minimal package.json,
installs react, react-dom, react-scripts and a template package into it, and
hands the project over to the initializer shipped with react-scripts.

Examples:
  create-react-app my-app
  create-react-app my-app file:../my-template
  create-react-app my-app --use-npm --template cra-template-typescript`,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: runCreate,
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.ErrOrStderr(), c.UsageString())
		return &pipeline.UsageError{Msg: "invalid flag", Err: err}
	})
	registerCreateFlags(cmd)
	return cmd
}

// validateArgs rejects extra positionals as a usage error. A missing
// project directory is reported by the pipeline.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return &pipeline.UsageError{Msg: "too many arguments, expected <project-directory> [project-template]"}
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	return rootCmd.Execute()
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/create-react-app/internal/config"
	"github.com/agentx-labs/create-react-app/internal/installer"
	"github.com/agentx-labs/create-react-app/internal/manifest"
	"github.com/agentx-labs/create-react-app/internal/preflight"
	"github.com/agentx-labs/create-react-app/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	checkTemplate string
	doctorUseNpm  bool
)

func init() {
	doctorCmd.Flags().StringVar(&checkTemplate, "check-template", "", "Resolve and validate a template reference without creating anything")
	doctorCmd.Flags().BoolVar(&doctorUseNpm, "use-npm", false, "Check npm instead of yarn")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools needed to create a project are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		settings := config.Current()

		manager := settings.PackageManager
		if doctorUseNpm {
			manager = installer.ManagerNpm
		}

		fmt.Fprintln(out, "Tool check:")
		results := preflight.Run(cmd.Context(), preflightChecks(settings, manager))
		preflight.Report(out, results)

		if checkTemplate != "" {
			if err := runTemplateCheck(out, settings, checkTemplate); err != nil {
				return err
			}
		}

		if missing := preflight.Missing(results); len(missing) > 0 {
			return fmt.Errorf("%d required tool(s) missing", len(missing))
		}
		return nil
	},
}

func runTemplateCheck(w io.Writer, s config.Settings, ref string) error {
	fmt.Fprintf(w, "Template check: %s\n", ref)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	tmpl, err := resolver.New(s.FallbackTemplate).Resolve(ref, cwd)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("template check failed: %w", err)
	}

	if !tmpl.IsLocal() {
		fmt.Fprintf(w, "  [ OK ] %s will be installed from the registry\n", tmpl.Locator)
		return nil
	}

	// The resolver only requires a name and a semver version; the schema
	// applies the full package.json rules.
	result, err := manifest.ValidateFile(filepath.Join(tmpl.Path(), manifest.FileName))
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("template check failed: %w", err)
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "    - %s\n", issue.String())
		}
		return fmt.Errorf("template %s has %d validation issue(s)", tmpl.Path(), len(result.Issues))
	}

	version := tmpl.Version
	if version == "" {
		version = "unversioned"
	}
	fmt.Fprintf(w, "  [ OK ] %s (%s) at %s\n", tmpl.DisplayName, version, tmpl.Path())
	return nil
}

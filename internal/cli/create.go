package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/agentx-labs/create-react-app/internal/config"
	"github.com/agentx-labs/create-react-app/internal/installer"
	"github.com/agentx-labs/create-react-app/internal/pipeline"
	"github.com/agentx-labs/create-react-app/internal/preflight"
	"github.com/agentx-labs/create-react-app/internal/resolver"
	"github.com/agentx-labs/create-react-app/internal/runtime"
	"github.com/agentx-labs/create-react-app/internal/scaffold"
	"github.com/spf13/cobra"
)

// createOptions holds the root command flags.
type createOptions struct {
	template       string
	useNpm         bool
	scriptsVersion string
	verbose        bool
	strictInit     bool
	skipChecks     bool
}

var createOpts createOptions

func registerCreateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&createOpts.template, "template", "", "Template package or file:<path> (same as the second argument)")
	f.BoolVar(&createOpts.useNpm, "use-npm", false, "Install with npm instead of yarn")
	f.StringVar(&createOpts.scriptsVersion, "scripts-version", "", "Install this locator instead of react-scripts")
	f.BoolVar(&createOpts.verbose, "verbose", false, "Print debug diagnostics")
	f.BoolVar(&createOpts.strictInit, "strict-init", false, "Exit with the initializer's exit code when it fails")
	f.BoolVar(&createOpts.skipChecks, "skip-checks", false, "Skip the node and package manager checks")
}

func runCreate(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(args, createOpts.template)
	if err != nil {
		printUsage(cmd, err)
		return err
	}

	settings := config.Current()
	logger := NewCommandLogger(createOpts.verbose).With("command", "create")

	p, err := newPipeline(settings, createOpts, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	if !createOpts.skipChecks && strings.TrimSpace(req.Target) != "" {
		if err := runPreflight(cmd.Context(), settings, managerFor(settings, createOpts), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	_, err = p.Run(cmd.Context(), req)
	logger.Debug("create finished", "state", p.State().String())
	if err != nil {
		printUsage(cmd, err)
	}
	return err
}

// buildRequest maps positionals and the --template flag to a pipeline
// request. The project directory is validated by the pipeline itself.
func buildRequest(args []string, templateFlag string) (pipeline.Request, error) {
	var req pipeline.Request
	if len(args) > 0 {
		req.Target = args[0]
	}

	req.Template = templateFlag
	if len(args) > 1 {
		if templateFlag != "" && templateFlag != args[1] {
			return req, &pipeline.UsageError{
				Msg: fmt.Sprintf("template given twice: %q and --template %q", args[1], templateFlag),
			}
		}
		req.Template = args[1]
	}
	return req, nil
}

func managerFor(s config.Settings, opts createOptions) string {
	if opts.useNpm {
		return installer.ManagerNpm
	}
	return s.PackageManager
}

// newPipeline wires the production collaborators from settings and flags.
// Flags take precedence over settings.
func newPipeline(s config.Settings, opts createOptions, out io.Writer, logger *slog.Logger) (*pipeline.Pipeline, error) {
	client, err := installer.New(managerFor(s, opts))
	if err != nil {
		return nil, err
	}
	client.Logger = logger

	scripts := s.ScriptsPackage
	if opts.scriptsVersion != "" {
		scripts = opts.scriptsVersion
	}

	entry := path.Join(s.ScriptsPackage, s.InitializerEntry)
	initializer := runtime.DispatchRuntime(s.InitializerRuntime, entry, s.InitializerExecutable)
	switch r := initializer.(type) {
	case *runtime.NodeRuntime:
		r.Logger = logger
	case *runtime.ExecRuntime:
		r.Logger = logger
	}

	return &pipeline.Pipeline{
		Resolver:    resolver.New(s.FallbackTemplate),
		Bootstrap:   pipeline.BootstrapFunc(scaffold.Bootstrap),
		Installer:   client,
		Initializer: initializer,
		Packages: pipeline.Packages{
			Runtime:  s.RuntimePackage,
			Renderer: s.RendererPackage,
			Scripts:  scripts,
		},
		StrictInit: opts.strictInit || s.InitializerStrict,
		Out:        out,
		Style:      consoleStyle(),
		Logger:     logger,
	}, nil
}

// preflightChecks lists the tools creation depends on. The package managers
// run on node, so node is always required; its version constraint applies
// only when node also runs the initializer.
func preflightChecks(s config.Settings, manager string) []preflight.Check {
	nodeConstraint := ""
	if s.InitializerRuntime == runtime.RuntimeNode {
		nodeConstraint = s.NodeConstraint
	}
	checks := []preflight.Check{{Name: "node", Binary: "node", Constraint: nodeConstraint}}
	switch manager {
	case installer.ManagerNpm:
		checks = append(checks, preflight.Check{Name: "npm", Binary: "npm", Constraint: s.NpmConstraint})
	default:
		checks = append(checks, preflight.Check{Name: "yarn", Binary: "yarnpkg", Constraint: s.YarnConstraint})
	}
	return checks
}

// runPreflight reports outdated tools as warnings and fails only when a
// tool is missing.
func runPreflight(ctx context.Context, s config.Settings, manager string, w io.Writer) error {
	results := preflight.Run(ctx, preflightChecks(s, manager))

	var problems []preflight.Result
	for _, r := range results {
		if r.Status != preflight.StatusOK {
			problems = append(problems, r)
		}
	}
	preflight.Report(w, problems)

	missing := preflight.Missing(results)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for _, r := range missing {
		names = append(names, r.Check.Binary)
	}
	return fmt.Errorf("required tools not found on PATH: %s (use --skip-checks to bypass)", strings.Join(names, ", "))
}

func printUsage(cmd *cobra.Command, err error) {
	var usage *pipeline.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	}
}


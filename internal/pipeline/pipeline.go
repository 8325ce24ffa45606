package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/agentx-labs/create-react-app/internal/installer"
	"github.com/agentx-labs/create-react-app/internal/resolver"
	"github.com/agentx-labs/create-react-app/internal/runtime"
	"github.com/agentx-labs/create-react-app/internal/scaffold"
)

// Request is the validated command input.
type Request struct {
	Target   string // project directory, required
	Template string // optional template reference
	// OriginalDirectory is where relative paths are resolved. Defaults to
	// the process working directory.
	OriginalDirectory string
}

// TemplateResolver resolves a template reference.
type TemplateResolver interface {
	Resolve(ref, originalDir string) (*resolver.Template, error)
}

// Bootstrapper creates the project directory and manifest.
type Bootstrapper interface {
	Bootstrap(target, originalDir string) (scaffold.Project, error)
}

// BootstrapFunc adapts a function to Bootstrapper.
type BootstrapFunc func(target, originalDir string) (scaffold.Project, error)

func (f BootstrapFunc) Bootstrap(target, originalDir string) (scaffold.Project, error) {
	return f(target, originalDir)
}

// Installer adds packages to a project root and returns the exit code.
type Installer interface {
	Install(ctx context.Context, root string, plan installer.Plan) (int, error)
}

// Packages are the fixed members of the install plan.
type Packages struct {
	Runtime  string
	Renderer string
	Scripts  string
}

// Style colors user-facing output. Nil fields leave text unchanged.
type Style struct {
	Path    func(string) string
	Package func(string) string
	Warn    func(string) string
	Error   func(string) string
}

func apply(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// Pipeline runs one project creation.
type Pipeline struct {
	Resolver    TemplateResolver
	Bootstrap   Bootstrapper
	Installer   Installer
	Initializer runtime.Runtime
	Packages    Packages

	// StrictInit turns a non-zero initializer exit into an InitializerError.
	StrictInit bool

	Out    io.Writer
	Style  Style
	Logger *slog.Logger

	// OnTransition, if set, observes every state change.
	OnTransition func(from, to State)

	state State
}

// Result describes a completed (or partially completed) run.
type Result struct {
	State        State
	Template     *resolver.Template
	Project      scaffold.Project
	Plan         installer.Plan
	InitExitCode int
}

// State returns the current state of the pipeline.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the state machine for req. The returned Result is non-nil
// even on failure and reflects how far the run got.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	p.state = StateParsingArgs
	res := &Result{State: p.state}

	originalDir, err := p.parseArgs(&req)
	if err != nil {
		return p.fail(res, err)
	}

	p.transition(res, StateResolvingTemplate)
	tmpl, err := p.Resolver.Resolve(req.Template, originalDir)
	if err != nil {
		return p.fail(res, err)
	}
	res.Template = tmpl
	p.logger().Debug("resolved template", "locator", tmpl.Locator, "name", tmpl.DisplayName, "version", tmpl.Version)

	p.transition(res, StateBootstrapping)
	project, err := p.Bootstrap.Bootstrap(req.Target, originalDir)
	if err != nil {
		return p.fail(res, err)
	}
	project.TemplateName = tmpl.DisplayName
	res.Project = project
	p.logger().Debug("wrote manifest", "path", project.ManifestPath)
	p.printf("Creating a new React app in %s.\n\n", apply(p.Style.Path, project.Root))

	p.transition(res, StateInstalling)
	res.Plan = installer.NewPlan(p.Packages.Runtime, p.Packages.Renderer, p.Packages.Scripts, tmpl.Locator)
	p.printf("Installing packages. This might take a couple of minutes.\n")
	p.printf("Installing %s with %s...\n\n", p.describePackages(), apply(p.Style.Package, tmpl.DisplayName))

	code, err := p.Installer.Install(ctx, project.Root, res.Plan)
	if err != nil {
		return p.fail(res, err)
	}
	if code != 0 {
		p.printf("\n%s\n", apply(p.Style.Error, "Aborting installation."))
		p.printf("The project directory %s was left in place; re-run the command to retry.\n", apply(p.Style.Path, project.Root))
		return p.fail(res, &InstallError{Code: code})
	}

	p.transition(res, StateInvoking)
	out, err := p.Initializer.Init(ctx, project)
	if err != nil {
		return p.fail(res, err)
	}
	res.InitExitCode = out.ExitCode
	if out.ExitCode != 0 {
		if p.StrictInit {
			return p.fail(res, &InitializerError{Code: out.ExitCode})
		}
		p.printf("%s\n", apply(p.Style.Warn, fmt.Sprintf("Initializer exited with code %d.", out.ExitCode)))
	}

	p.transition(res, StateDone)
	p.printf("Done\n")
	return res, nil
}

// parseArgs validates req and returns the directory relative paths are
// resolved against.
func (p *Pipeline) parseArgs(req *Request) (string, error) {
	if strings.TrimSpace(req.Target) == "" {
		return "", &UsageError{Msg: "missing required argument <project-directory>"}
	}
	if err := scaffold.ValidateName(req.Target); err != nil {
		return "", &UsageError{Msg: "invalid project name", Err: err}
	}

	if req.OriginalDirectory != "" {
		return req.OriginalDirectory, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return cwd, nil
}

// describePackages renders "a, b, and c" for the fixed packages.
func (p *Pipeline) describePackages() string {
	var names []string
	for _, name := range []string{p.Packages.Runtime, p.Packages.Renderer, p.Packages.Scripts} {
		if name != "" {
			names = append(names, apply(p.Style.Package, name))
		}
	}
	switch len(names) {
	case 0:
		return "dependencies"
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func (p *Pipeline) transition(res *Result, to State) {
	from := p.state
	p.state = to
	res.State = to
	p.logger().Debug("state transition", "from", from.String(), "to", to.String())
	if p.OnTransition != nil {
		p.OnTransition(from, to)
	}
}

func (p *Pipeline) fail(res *Result, err error) (*Result, error) {
	p.logger().Debug("stage failed", "state", p.state.String(), "error", err)
	p.transition(res, StateFailed)
	return res, err
}

func (p *Pipeline) printf(format string, args ...any) {
	if p.Out == nil {
		return
	}
	fmt.Fprintf(p.Out, format, args...)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/agentx-labs/create-react-app/internal/scaffold"
)

// Runtime invokes a delegated initializer for a bootstrapped project.
type Runtime interface {
	// Init runs the initializer and blocks until it exits. A non-zero exit
	// is reported in Output; the error is reserved for failures to start.
	Init(ctx context.Context, project scaffold.Project) (*Output, error)
}

// Output captures the result of an initializer run.
type Output struct {
	ExitCode int
}

// Supported runtime identifiers.
const (
	RuntimeNode = "node"
	RuntimeExec = "exec"
)

// Streams are the standard streams handed to the child. Nil fields default
// to the process streams.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// SpawnError reports an initializer that could not be started at all. It
// is distinct from an initializer that started and exited non-zero.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not start initializer %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Args returns the positional argument vector passed to every initializer:
// root, app name, verbose flag, original directory, template name.
func Args(p scaffold.Project) []any {
	return []any{p.Root, p.AppName, true, p.OriginalDirectory, p.TemplateName}
}

// EncodeArgs serializes Args(p) as a single JSON array argument.
func EncodeArgs(p scaffold.Project) (string, error) {
	data, err := json.Marshal(Args(p))
	if err != nil {
		return "", fmt.Errorf("serializing initializer arguments: %w", err)
	}
	return string(data), nil
}

// DispatchRuntime returns the Runtime for the given identifier. entry is
// the module the node runtime requires; executable is what the exec
// runtime runs. Unknown identifiers produce a runtime that always fails.
func DispatchRuntime(name, entry, executable string) Runtime {
	switch name {
	case RuntimeNode:
		return &NodeRuntime{Entry: entry}
	case RuntimeExec:
		return &ExecRuntime{Executable: executable}
	default:
		return &unknownRuntime{name: name}
	}
}

// unknownRuntime is returned when the runtime identifier is not recognized.
type unknownRuntime struct {
	name string
}

func (u *unknownRuntime) Init(_ context.Context, _ scaffold.Project) (*Output, error) {
	return nil, &SpawnError{
		Command: u.name,
		Err:     fmt.Errorf("unknown runtime %q: supported runtimes are %q and %q", u.name, RuntimeNode, RuntimeExec),
	}
}

// run starts bin in dir with the given streams and waits for it.
func run(ctx context.Context, bin string, args []string, dir string, s Streams, logger *slog.Logger) (*Output, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("running initializer", "bin", bin, "args", args, "dir", dir)

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Command: bin, Err: err}
	}

	err := cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Output{ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, fmt.Errorf("waiting for initializer: %w", err)
	}
	return &Output{ExitCode: 0}, nil
}

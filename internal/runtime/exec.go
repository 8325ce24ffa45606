package runtime

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/agentx-labs/create-react-app/internal/platform"
	"github.com/agentx-labs/create-react-app/internal/scaffold"
)

// ExecRuntime runs a standalone initializer executable. The contract:
//
//   - argv[1] is the JSON array [root, appName, true, originalDirectory, templateName]
//   - the working directory is the project root
//   - exit code 0 means success, anything else an initializer-reported failure
//
// Executable may be an absolute path or a name, which is searched in
// <root>/node_modules/.bin and then on PATH.
type ExecRuntime struct {
	Executable string

	Streams
	Logger *slog.Logger
}

// Init runs the executable with the encoded argument vector.
func (e *ExecRuntime) Init(ctx context.Context, p scaffold.Project) (*Output, error) {
	if e.Executable == "" {
		return nil, &SpawnError{Command: RuntimeExec, Err: errors.New("no initializer executable configured")}
	}

	bin, err := platform.LookPathIn(e.Executable, filepath.Join(p.Root, "node_modules", ".bin"))
	if err != nil {
		return nil, &SpawnError{Command: e.Executable, Err: err}
	}

	argsJSON, err := EncodeArgs(p)
	if err != nil {
		return nil, err
	}

	return run(ctx, bin, []string{argsJSON}, p.Root, e.Streams, e.Logger)
}

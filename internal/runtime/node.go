package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/create-react-app/internal/platform"
	"github.com/agentx-labs/create-react-app/internal/scaffold"
)

// NodeRuntime runs the initializer by evaluating an inline script with
// Node.js. The script requires Entry (a module specifier such as
// "react-scripts/scripts/init.js", resolved from the project's
// node_modules) and applies the decoded argument vector to it.
type NodeRuntime struct {
	Entry string
	// Node overrides the node executable looked up on PATH.
	Node string

	Streams
	Logger *slog.Logger
}

// Source returns the inline script body for the configured entry module.
func (n *NodeRuntime) Source() string {
	quoted, _ := json.Marshal(n.Entry)
	return fmt.Sprintf("var init = require(%s);\ninit.apply(null, JSON.parse(process.argv[1]));\n", quoted)
}

// Init evaluates the inline script as `node -e <source> -- <json-args>`.
// A missing entry module is reported as a SpawnError before node starts.
func (n *NodeRuntime) Init(ctx context.Context, p scaffold.Project) (*Output, error) {
	nodeName := n.Node
	if nodeName == "" {
		nodeName = "node"
	}
	nodeBin, err := platform.LookPath(nodeName)
	if err != nil {
		return nil, &SpawnError{Command: nodeName, Err: fmt.Errorf("node runtime requires Node.js: %w", err)}
	}

	if _, err := findModule(p.Root, n.Entry); err != nil {
		return nil, &SpawnError{Command: nodeBin, Err: err}
	}

	argsJSON, err := EncodeArgs(p)
	if err != nil {
		return nil, err
	}

	return run(ctx, nodeBin, []string{"-e", n.Source(), "--", argsJSON}, p.Root, n.Streams, n.Logger)
}

// findModule locates entry under <root>/node_modules the way require does
// for a file specifier: as given, then with a .js extension.
func findModule(root, entry string) (string, error) {
	if entry == "" {
		return "", fmt.Errorf("no initializer entry module configured")
	}
	base := filepath.Join(root, "node_modules", filepath.FromSlash(entry))
	candidates := []string{base}
	if !strings.HasSuffix(base, ".js") {
		candidates = append(candidates, base+".js")
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("initializer module %s not found in %s", entry, filepath.Join(root, "node_modules"))
}

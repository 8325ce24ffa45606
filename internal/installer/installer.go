package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/agentx-labs/create-react-app/internal/platform"
)

// Supported package managers.
const (
	ManagerYarn = "yarn"
	ManagerNpm  = "npm"
)

// Client runs one package manager.
type Client struct {
	Manager string
	// Binary overrides the executable looked up on PATH.
	Binary string

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger
}

// New returns a Client for manager, which must be "yarn" or "npm".
func New(manager string) (*Client, error) {
	switch manager {
	case ManagerYarn, ManagerNpm:
		return &Client{Manager: manager}, nil
	default:
		return nil, fmt.Errorf("unknown package manager %q: supported managers are %q and %q", manager, ManagerYarn, ManagerNpm)
	}
}

// Command returns the executable name the client runs.
func (c *Client) Command() string {
	if c.Binary != "" {
		return c.Binary
	}
	if c.Manager == ManagerNpm {
		return "npm"
	}
	return "yarnpkg"
}

// Args returns the argument list that installs packages into root with
// exact versions pinned.
func (c *Client) Args(root string, packages Plan) []string {
	if c.Manager == ManagerNpm {
		args := []string{"install", "--no-audit", "--save", "--save-exact", "--loglevel", "error"}
		return append(args, packages...)
	}
	args := []string{"add", "--exact"}
	args = append(args, packages...)
	return append(args, "--cwd", root)
}

// Install runs the package manager once and blocks until it exits. A
// non-zero exit is returned as the exit code with a nil error; the error
// is reserved for failures to start the process at all.
func (c *Client) Install(ctx context.Context, root string, packages Plan) (int, error) {
	if len(packages) == 0 {
		return 0, errors.New("install plan is empty")
	}

	bin, err := platform.LookPath(c.Command())
	if err != nil {
		return 0, fmt.Errorf("%s is required to install dependencies: %w", c.Manager, err)
	}

	args := c.Args(root, packages)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = root
	cmd.Stdin = orReader(c.Stdin, os.Stdin)
	cmd.Stdout = orWriter(c.Stdout, os.Stdout)
	cmd.Stderr = orWriter(c.Stderr, os.Stderr)

	c.logger().Debug("running package manager", "bin", bin, "packages", packages.String(), "args", args, "dir", root)

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("running %s: %w", c.Command(), err)
	}
	return 0, nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

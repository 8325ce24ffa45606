package preflight

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/agentx-labs/create-react-app/internal/platform"
)

// Check describes one tool to probe.
type Check struct {
	Name       string // display name, e.g. "node"
	Binary     string // executable, e.g. "yarnpkg"
	Constraint string // semver constraint; empty skips the version check
}

// Status classifies a check result.
type Status int

const (
	StatusOK Status = iota
	StatusOutdated
	StatusUnknownVersion
	StatusMissing
)

// Result is the outcome of one Check.
type Result struct {
	Check   Check
	Path    string
	Version string
	Status  Status
	Err     error
}

// Run probes every check in order. It never fails as a whole; problems are
// recorded per result.
func Run(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, runOne(ctx, c))
	}
	return results
}

func runOne(ctx context.Context, c Check) Result {
	r := Result{Check: c}

	path, err := platform.LookPath(c.Binary)
	if err != nil {
		r.Status = StatusMissing
		r.Err = err
		return r
	}
	r.Path = path

	version, err := probeVersion(ctx, path)
	if err != nil {
		r.Status = StatusUnknownVersion
		r.Err = err
		return r
	}
	r.Version = version

	if c.Constraint == "" {
		return r
	}
	ok, err := Satisfies(version, c.Constraint)
	switch {
	case err != nil:
		r.Status = StatusUnknownVersion
		r.Err = err
	case !ok:
		r.Status = StatusOutdated
	}
	return r
}

// probeVersion runs `<bin> --version` and returns the trimmed first line.
func probeVersion(ctx context.Context, bin string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(out.String()), "\n")
	return strings.TrimSpace(line), nil
}

// Missing returns the results whose binary could not be found.
func Missing(results []Result) []Result {
	var missing []Result
	for _, r := range results {
		if r.Status == StatusMissing {
			missing = append(missing, r)
		}
	}
	return missing
}

// Report prints one line per result in the doctor format.
func Report(w io.Writer, results []Result) {
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			fmt.Fprintf(w, "  [ OK ] %s %s found at %s\n", r.Check.Name, r.Version, r.Path)
		case StatusOutdated:
			fmt.Fprintf(w, "  [WARN] %s %s does not satisfy %s\n", r.Check.Name, r.Version, r.Check.Constraint)
		case StatusUnknownVersion:
			fmt.Fprintf(w, "  [WARN] %s found at %s but its version could not be checked: %v\n", r.Check.Name, r.Path, r.Err)
		case StatusMissing:
			fmt.Fprintf(w, "  [MISS] %s (%s) not found\n", r.Check.Name, r.Check.Binary)
		}
	}
}

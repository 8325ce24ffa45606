//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/agentx-labs/create-react-app/internal/installer"
	"github.com/agentx-labs/create-react-app/internal/pipeline"
	"github.com/agentx-labs/create-react-app/internal/resolver"
	cra "github.com/agentx-labs/create-react-app/internal/runtime"
	"github.com/agentx-labs/create-react-app/internal/scaffold"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	WorkDir  string // original directory the command runs from
	BinDir   string // fake executables, prepended to PATH
	Record   string // files the fakes write into
	Out      *bytes.Buffer
	Pipeline *pipeline.Pipeline
}

// setupTestEnv creates isolated temp directories, a fake yarnpkg on PATH
// that exits with yarnExit, and an exec initializer that exits with
// initExit. HOME is redirected so no user config is read.
func setupTestEnv(t *testing.T, yarnExit, initExit int) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executables are shell scripts")
	}

	env := &testEnv{
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
		Record:  t.TempDir(),
		Out:     &bytes.Buffer{},
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	writeScript(t, filepath.Join(env.BinDir, "yarnpkg"), `#!/bin/sh
pwd -P > "`+env.Record+`/yarn.cwd"
printf '%s\n' "$@" > "`+env.Record+`/yarn.args"
exit `+strconv.Itoa(yarnExit)+`
`)
	initializer := filepath.Join(env.BinDir, "fake-init")
	writeScript(t, initializer, `#!/bin/sh
pwd -P > "`+env.Record+`/init.cwd"
printf '%s' "$1" > "`+env.Record+`/init.args"
echo "$#" > "`+env.Record+`/init.argc"
exit `+strconv.Itoa(initExit)+`
`)

	client, err := installer.New(installer.ManagerYarn)
	if err != nil {
		t.Fatalf("installer.New: %v", err)
	}
	client.Stdout, client.Stderr = env.Out, env.Out

	env.Pipeline = &pipeline.Pipeline{
		Resolver:    resolver.New("cra-template"),
		Bootstrap:   pipeline.BootstrapFunc(scaffold.Bootstrap),
		Installer:   client,
		Initializer: &cra.ExecRuntime{Executable: initializer, Streams: cra.Streams{Stdout: env.Out, Stderr: env.Out}},
		Packages:    pipeline.Packages{Runtime: "react", Renderer: "react-dom", Scripts: "react-scripts"},
		Out:         env.Out,
	}
	return env
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readRecord returns a file written by a fake, trimmed of trailing newlines.
func readRecord(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(env.Record, name))
	if err != nil {
		t.Fatalf("reading record %s: %v", name, err)
	}
	return strings.TrimRight(string(data), "\n")
}

func assertNoRecord(t *testing.T, env *testEnv, name string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(env.Record, name)); !os.IsNotExist(err) {
		t.Errorf("expected %s not to be recorded", name)
	}
}

func evalPath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks(%s): %v", path, err)
	}
	return resolved
}

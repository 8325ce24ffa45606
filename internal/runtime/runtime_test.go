package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agentx-labs/create-react-app/internal/platform"
	"github.com/agentx-labs/create-react-app/internal/scaffold"
)

func testProject(t *testing.T) scaffold.Project {
	t.Helper()
	return scaffold.Project{
		Root:              t.TempDir(),
		AppName:           "my-app",
		OriginalDirectory: "/home/dev",
		TemplateName:      "cra-template",
	}
}

func TestDispatchRuntime_Node(t *testing.T) {
	rt := DispatchRuntime("node", "react-scripts/scripts/init.js", "")
	n, ok := rt.(*NodeRuntime)
	if !ok {
		t.Fatalf("DispatchRuntime(\"node\") returned %T, want *NodeRuntime", rt)
	}
	if n.Entry != "react-scripts/scripts/init.js" {
		t.Errorf("Entry = %q", n.Entry)
	}
}

func TestDispatchRuntime_Exec(t *testing.T) {
	rt := DispatchRuntime("exec", "", "cra-init")
	e, ok := rt.(*ExecRuntime)
	if !ok {
		t.Fatalf("DispatchRuntime(\"exec\") returned %T, want *ExecRuntime", rt)
	}
	if e.Executable != "cra-init" {
		t.Errorf("Executable = %q", e.Executable)
	}
}

func TestDispatchRuntime_Unknown(t *testing.T) {
	rt := DispatchRuntime("python", "", "")
	if _, ok := rt.(*unknownRuntime); !ok {
		t.Errorf("DispatchRuntime(\"python\") returned %T, want *unknownRuntime", rt)
	}

	_, err := rt.Init(context.Background(), scaffold.Project{})
	var se *SpawnError
	if !errors.As(err, &se) {
		t.Errorf("error = %v, want *SpawnError", err)
	}
}

func TestEncodeArgs_Order(t *testing.T) {
	p := scaffold.Project{
		Root:              "/work/my-app",
		AppName:           "my-app",
		OriginalDirectory: "/work",
		TemplateName:      "x",
	}
	got, err := EncodeArgs(p)
	if err != nil {
		t.Fatalf("EncodeArgs error: %v", err)
	}
	want := `["/work/my-app","my-app",true,"/work","x"]`
	if got != want {
		t.Errorf("EncodeArgs = %s, want %s", got, want)
	}
}

func TestNodeRuntime_Source(t *testing.T) {
	n := &NodeRuntime{Entry: "react-scripts/scripts/init.js"}
	src := n.Source()
	if !strings.Contains(src, `require("react-scripts/scripts/init.js")`) {
		t.Errorf("source does not require the entry module:\n%s", src)
	}
	if !strings.Contains(src, "JSON.parse(process.argv[1])") {
		t.Errorf("source does not decode argv[1]:\n%s", src)
	}
}

func TestNodeRuntime_MissingEntryModule(t *testing.T) {
	if _, err := exec.LookPath("node"); err != nil {
		t.Skip("Node.js not available, skipping")
	}

	rt := &NodeRuntime{Entry: "react-scripts/scripts/init.js"}
	_, err := rt.Init(context.Background(), testProject(t))
	var se *SpawnError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SpawnError", err)
	}
}

func TestNodeRuntime_MissingNode(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	rt := &NodeRuntime{Entry: "react-scripts/scripts/init.js", Node: "node-not-installed"}
	_, err := rt.Init(context.Background(), testProject(t))
	var se *SpawnError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SpawnError", err)
	}
}

func TestNodeRuntime_InvokesEntryWithArgs(t *testing.T) {
	if _, err := exec.LookPath("node"); err != nil {
		t.Skip("Node.js not available, skipping")
	}

	p := testProject(t)
	record := filepath.Join(t.TempDir(), "args.json")
	initDir := filepath.Join(p.Root, "node_modules", "fake-scripts", "scripts")
	if err := os.MkdirAll(initDir, 0755); err != nil {
		t.Fatal(err)
	}
	recordJSON, _ := json.Marshal(record)
	script := `module.exports = function () {
  require('fs').writeFileSync(` + string(recordJSON) + `, JSON.stringify(Array.prototype.slice.call(arguments)));
  console.log('initialized');
};
`
	if err := os.WriteFile(filepath.Join(initDir, "init.js"), []byte(script), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	rt := &NodeRuntime{
		Entry:   "fake-scripts/scripts/init.js",
		Streams: Streams{Stdout: &stdout, Stderr: &stdout},
	}

	out, err := rt.Init(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0 (output: %s)", out.ExitCode, stdout.String())
	}

	assertRecordedArgs(t, record, p)
}

func TestNodeRuntime_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("node"); err != nil {
		t.Skip("Node.js not available, skipping")
	}

	p := testProject(t)
	initDir := filepath.Join(p.Root, "node_modules", "fake-scripts", "scripts")
	if err := os.MkdirAll(initDir, 0755); err != nil {
		t.Fatal(err)
	}
	script := `module.exports = function () { process.exit(42); };`
	if err := os.WriteFile(filepath.Join(initDir, "init.js"), []byte(script), 0644); err != nil {
		t.Fatal(err)
	}

	rt := &NodeRuntime{
		Entry:   "fake-scripts/scripts/init",
		Streams: Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}},
	}
	out, err := rt.Init(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error (non-zero exit should not be an error): %v", err)
	}
	if out.ExitCode != 42 {
		t.Errorf("exit code = %d, want 42", out.ExitCode)
	}
}

func TestExecRuntime_InvokesExecutableFromNodeModulesBin(t *testing.T) {
	if platform.IsWindows() {
		t.Skip("shell-script fakes are not runnable on Windows")
	}

	p := testProject(t)
	binDir := filepath.Join(p.Root, "node_modules", ".bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatal(err)
	}
	record := filepath.Join(t.TempDir(), "args.json")
	script := "#!/bin/sh\nprintf '%s' \"$1\" > \"" + record + "\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(binDir, "cra-init"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	rt := &ExecRuntime{
		Executable: "cra-init",
		Streams:    Streams{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}},
	}
	out, err := rt.Init(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", out.ExitCode)
	}

	assertRecordedArgs(t, record, p)
}

func TestExecRuntime_MissingExecutable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	for _, name := range []string{"", "cra-init"} {
		rt := &ExecRuntime{Executable: name}
		_, err := rt.Init(context.Background(), testProject(t))
		var se *SpawnError
		if !errors.As(err, &se) {
			t.Errorf("Executable=%q: error = %v, want *SpawnError", name, err)
		}
	}
}

func assertRecordedArgs(t *testing.T, record string, p scaffold.Project) {
	t.Helper()
	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatalf("initializer did not record its arguments: %v", err)
	}
	var got []any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decoding recorded args %q: %v", data, err)
	}
	want := []any{p.Root, p.AppName, true, p.OriginalDirectory, p.TemplateName}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("initializer args mismatch (-want +got):\n%s", diff)
	}
}

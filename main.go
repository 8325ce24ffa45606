package main

import (
	"fmt"
	"os"

	"github.com/agentx-labs/create-react-app/internal/cli"
	"github.com/agentx-labs/create-react-app/internal/pipeline"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(pipeline.ExitCode(err))
	}
}

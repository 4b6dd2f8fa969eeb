// Command synthscreen is the synthesizability screening CLI.
package main

import (
	"os"

	"github.com/turtacn/SynthScreen/internal/interfaces/cli"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(apperrors.ExitCodeForCode(apperrors.GetCode(err)))
	}
}

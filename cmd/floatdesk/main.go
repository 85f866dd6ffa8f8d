package main

import (
	"context"
	"runtime"

	"github.com/bnema/floatdesk/internal/cli/cmd"
	"github.com/bnema/floatdesk/internal/domain/build"
	"github.com/bnema/floatdesk/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	crash := enableCrashForensics()

	// Stderr logger for process-level events; the desk logs to its own file.
	logger := logging.NewFromEnv()
	defer logging.RecoverPanic(&logger)
	logCrashSetup(logging.WithContext(context.Background(), logger), crash)

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

//go:build !linux && !darwin

package main

import (
	"context"
	"runtime/debug"

	"github.com/bnema/floatdesk/internal/logging"
)

type crashSetup struct{}

func enableCrashForensics() crashSetup {
	debug.SetTraceback("all")
	return crashSetup{}
}

func logCrashSetup(ctx context.Context, _ crashSetup) {
	logging.FromContext(ctx).Debug().Str("traceback", "all").Msg("crash forensics")
}

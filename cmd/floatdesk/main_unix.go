//go:build linux || darwin

package main

import (
	"context"
	"os"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/floatdesk/internal/logging"
)

// coreDumpEnv opts into core files on fatal errors.
const coreDumpEnv = "FLOATDESK_CORE_DUMPS"

// crashSetup is what enableCrashForensics changed, for logging once a logger
// exists.
type crashSetup struct {
	traceback string
	before    unix.Rlimit
	after     unix.Rlimit
	err       error
}

// enableCrashForensics prints every goroutine on a fatal error. With
// FLOATDESK_CORE_DUMPS=1 it also aborts so the kernel writes a core file,
// raising the soft core limit to the hard one.
func enableCrashForensics() crashSetup {
	setup := crashSetup{traceback: "all"}
	if on, _ := strconv.ParseBool(os.Getenv(coreDumpEnv)); on {
		setup.traceback = "crash"
	}
	debug.SetTraceback(setup.traceback)

	if setup.err = unix.Getrlimit(unix.RLIMIT_CORE, &setup.before); setup.err != nil {
		return setup
	}
	setup.after = setup.before
	if setup.traceback == "crash" && setup.before.Cur < setup.before.Max {
		setup.after.Cur = setup.before.Max
		if setup.err = unix.Setrlimit(unix.RLIMIT_CORE, &setup.after); setup.err != nil {
			setup.after = setup.before
		}
	}
	return setup
}

func logCrashSetup(ctx context.Context, setup crashSetup) {
	log := logging.FromContext(ctx)
	if setup.err != nil {
		log.Debug().Err(setup.err).Msg("core limit unchanged")
	}
	log.Debug().
		Str("traceback", setup.traceback).
		Str("core_soft", formatRlimit(setup.after.Cur)).
		Str("core_hard", formatRlimit(setup.after.Max)).
		Bool("raised", setup.after.Cur != setup.before.Cur).
		Msg("crash forensics")
}

func formatRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}

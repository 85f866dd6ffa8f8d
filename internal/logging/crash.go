package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack and re-panics. Use it deferred at
// the top of main and of long-lived goroutines:
//
//	defer logging.RecoverPanic(logger)
func RecoverPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if logger == nil {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		panic(r)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", mem.Alloc/1024).
		Uint32("num_gc", mem.NumGC).
		Bytes("stack", debug.Stack()).
		Msg("panic")
	panic(r)
}

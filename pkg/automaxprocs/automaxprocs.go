// Package automaxprocs sizes GOMAXPROCS to the container CPU quota before the service starts.
package automaxprocs

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	mu   sync.Mutex
	undo func()

	// initial is GOMAXPROCS at process start.
	initial = Current()
)

// Init applies the CPU quota and returns the resulting GOMAXPROCS.
// An explicit GOMAXPROCS environment variable always wins.
func Init(ctx context.Context) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	log := func(format string, v ...any) {
		attrs := []any{slogx.Int("prev_maxprocs", initial)}
		if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
			attrs = append(attrs, slogx.Bool("env_override", true))
		}
		logger.InfoContext(ctx, fmt.Sprintf(format, v...), attrs...)
	}

	revert, err := maxprocs.Set(maxprocs.Logger(log), maxprocs.Min(1))
	if err != nil {
		return Current(), errors.Wrap(err, "failed to set GOMAXPROCS")
	}
	undo = revert
	return Current(), nil
}

// Undo restores GOMAXPROCS to its value before Init and returns it.
func Undo() int {
	mu.Lock()
	defer mu.Unlock()

	if undo != nil {
		undo()
		undo = nil
		return Current()
	}
	runtime.GOMAXPROCS(initial)
	return initial
}

// Current returns the current value of GOMAXPROCS.
func Current() int {
	return runtime.GOMAXPROCS(0)
}

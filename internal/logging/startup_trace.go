package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records named milestones from process start to the first
// rendered frame. It only logs at debug or trace level.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	logger     *zerolog.Logger
	milestones []Milestone
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at t0. A nil logger or a logger above debug
// level gives a disabled trace.
func NewStartupTrace(t0 time.Time, logger *zerolog.Logger) *StartupTrace {
	if logger == nil || logger.GetLevel() > zerolog.DebugLevel {
		return nil
	}
	return &StartupTrace{t0: t0, logger: logger}
}

// Mark records a milestone.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	m := Milestone{Name: name, Elapsed: elapsed}
	if n := len(st.milestones); n > 0 {
		m.Delta = elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds()).
		Int64("delta_ms", m.Delta.Milliseconds()).
		Msg("startup_trace")
}

// Finish logs a one-line summary. Later marks are ignored.
func (st *StartupTrace) Finish() {
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: desk ready")
}

// Milestones returns a copy of what was recorded.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}

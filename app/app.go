package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"blocks/hal"
	"blocks/internal/buildinfo"
	"blocks/tinyboy/quad"
	"blocks/tinyboy/seq"
)

type Config struct {
	Mode seq.Mode
	// Trace logs every state change and branch, not just renders.
	Trace bool
	// ExitOnHalt makes the host step report ErrHalted once a linear script
	// has finished, so runners can stop.
	ExitOnHalt bool
}

// ErrHalted is returned by the step function when Config.ExitOnHalt is set
// and the sequencer finished cleanly.
var ErrHalted = errors.New("halted")

type system struct {
	h   hal.HAL
	cfg Config
	seq *seq.Sequencer

	mu     sync.Mutex
	done   bool
	halted bool
	err    error
}

// Run starts the firmware and blocks forever (TinyGo/native entrypoint).
//
// A linear script that has finished leaves its last frame on the panel.
func Run(h hal.HAL, cfg Config) {
	s := newSystem(h, cfg)
	s.run(context.Background())
	select {}
}

// NewWithConfig starts the sequencer on its own goroutine and returns a step
// function for host runners. The step reports a sequencer failure; a halted
// linear script or a cancelled ctx is not a failure.
func NewWithConfig(ctx context.Context, h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	go s.run(ctx)
	return s.step
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{h: h, cfg: cfg}
	hooks := seq.Hooks{
		OnRender: func(p quad.Pattern) { s.logf("render %s", p) },
	}
	if cfg.Trace {
		hooks.OnState = func(st seq.State) { s.logf("state %s", st) }
		hooks.OnEdge = func(e seq.Edge) { s.logf("edge %s", e) }
	}
	s.seq = seq.New(cfg.Mode, h.Display(), h.Buttons(), hooks)
	return s
}

func (s *system) run(ctx context.Context) {
	s.logf("blocks %s: %s mode", buildinfo.Short(), s.cfg.Mode)

	err := s.guard(ctx)
	halted := err == nil
	switch {
	case err == nil:
		s.logf("halted")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logf("stopped: %v", err)
		err = nil
	default:
		s.logf("failed: %v", err)
	}

	s.mu.Lock()
	s.done = true
	s.halted = halted
	s.err = err
	s.mu.Unlock()
}

func (s *system) step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done && s.err == nil && s.cfg.ExitOnHalt && s.halted {
		return ErrHalted
	}
	return s.err
}

// Done reports whether the sequencer has returned.
func (s *system) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *system) logf(format string, args ...any) {
	if l := s.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

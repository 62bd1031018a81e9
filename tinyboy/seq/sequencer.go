// Package seq drives the quadrant renderer from the control pad.
package seq

import (
	"context"
	"fmt"

	"blocks/hal"
	"blocks/tinyboy/quad"
)

// Hooks observe the sequencer. Any of them may be nil.
type Hooks struct {
	OnState  func(State)
	OnRender func(quad.Pattern)
	OnEdge   func(Edge)
}

// Sequencer plays one Mode against a display and a button source.
//
// It is single-threaded: Run must not be called concurrently.
type Sequencer struct {
	mode  Mode
	disp  hal.Display
	src   hal.Buttons
	hooks Hooks
}

// New returns a sequencer for mode.
func New(mode Mode, disp hal.Display, src hal.Buttons, hooks Hooks) *Sequencer {
	return &Sequencer{mode: mode, disp: disp, src: src, hooks: hooks}
}

// Mode reports the configured mode.
func (s *Sequencer) Mode() Mode { return s.mode }

// Run plays the script. Linear returns nil after the final render; Looping
// only returns when ctx ends.
func (s *Sequencer) Run(ctx context.Context) error {
	switch s.mode {
	case Linear:
		return s.runLinear(ctx)
	case Looping:
		return s.runLooping(ctx)
	default:
		return fmt.Errorf("seq: unknown mode %s", s.mode)
	}
}

var linearScript = [...]struct {
	state   State
	pattern quad.Pattern
	until   hal.ButtonState
	edge    Edge
}{
	{StateUpperLeft, quad.UpperLeft, hal.ButtonDown, EdgeLinearDown},
	{StateLowerLeft, quad.LowerLeft, hal.ButtonRight, EdgeLinearRight},
	{StateLowerRight, quad.LowerRight, hal.ButtonUp, EdgeLinearUp},
}

func (s *Sequencer) runLinear(ctx context.Context) error {
	for _, step := range linearScript {
		s.enter(step.state)
		s.render(step.pattern)
		if _, err := WaitUntil(ctx, s.src, Pressed(step.until)); err != nil {
			return err
		}
		s.edge(step.edge)
	}
	s.enter(StateFinal)
	s.render(quad.UpperRight)
	return nil
}

func (s *Sequencer) runLooping(ctx context.Context) error {
	for {
		s.enter(StateUpperLeft)
		s.render(quad.UpperLeft)

		b, err := WaitUntil(ctx, s.src, Any)
		if err != nil {
			return err
		}

		// Equality, not a bit test: chords and UP/LEFT take no branch.
		switch b {
		case hal.ButtonDown:
			s.edge(EdgeLoopDown)
			if err := s.branch(ctx, StateBranchDown, quad.LowerLeft, hal.ButtonRight, EdgeBranchDownDone); err != nil {
				return err
			}
		case hal.ButtonRight:
			s.edge(EdgeLoopRight)
			if err := s.branch(ctx, StateBranchRight, quad.UpperRight, hal.ButtonDown, EdgeBranchRightDone); err != nil {
				return err
			}
		default:
			s.edge(EdgeLoopOther)
		}
	}
}

// branch renders first, waits for until, then renders lower-right.
func (s *Sequencer) branch(ctx context.Context, st State, first quad.Pattern, until hal.ButtonState, done Edge) error {
	s.enter(st)
	s.render(first)
	if _, err := WaitUntil(ctx, s.src, Pressed(until)); err != nil {
		return err
	}
	s.edge(done)
	s.render(quad.LowerRight)
	return nil
}

func (s *Sequencer) enter(st State) {
	if s.hooks.OnState != nil {
		s.hooks.OnState(st)
	}
}

func (s *Sequencer) render(p quad.Pattern) {
	quad.Render(s.disp, p)
	if s.hooks.OnRender != nil {
		s.hooks.OnRender(p)
	}
}

func (s *Sequencer) edge(e Edge) {
	if s.hooks.OnEdge != nil {
		s.hooks.OnEdge(e)
	}
}

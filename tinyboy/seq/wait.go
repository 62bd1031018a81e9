package seq

import (
	"context"

	"blocks/hal"
)

// Predicate decides whether a button snapshot ends a wait.
type Predicate func(hal.ButtonState) bool

// Pressed holds once b is set in the snapshot, whatever else is held.
func Pressed(b hal.ButtonState) Predicate {
	return func(s hal.ButtonState) bool { return s&b != 0 }
}

// Any holds for any non-zero snapshot.
func Any(s hal.ButtonState) bool { return s != hal.ButtonNone }

// WaitUntil spins on src until pred holds and returns the snapshot that
// satisfied it. Nothing sits between samples except what src imposes.
//
// ctx is the only way out without a qualifying press; device entry passes a
// context that is never cancelled.
func WaitUntil(ctx context.Context, src hal.Buttons, pred Predicate) (hal.ButtonState, error) {
	for {
		if err := ctx.Err(); err != nil {
			return hal.ButtonNone, err
		}
		if s := src.State(); pred(s) {
			return s, nil
		}
	}
}

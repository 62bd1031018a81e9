//go:build tinygo && baremetal

package hal

// stubPanel swallows cells when no panel answered at boot.
type stubPanel struct{}

func (stubPanel) WriteCell(b byte) { _ = b }

type stubButtons struct{}

func (stubButtons) State() ButtonState { return ButtonNone }

package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Panel geometry. A cell is one byte holding 8 monochrome pixels.
const (
	PanelRows  = 64
	PanelCols  = 8
	PanelCells = PanelRows * PanelCols

	// CellBits is the number of pixels packed into one cell.
	CellBits = 8
)

// Display is a sequential cell sink.
//
// There is no addressing: each WriteCell lands at the internal cursor, which
// advances row-major and wraps to cell 0 after PanelCells writes.
type Display interface {
	WriteCell(b byte)
}

// ButtonState is a snapshot of the control pad as a bitmask.
type ButtonState uint8

const (
	ButtonUp ButtonState = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight

	ButtonNone ButtonState = 0
)

// Has reports whether every bit in b is set in s.
func (s ButtonState) Has(b ButtonState) bool { return s&b == b && b != 0 }

func (s ButtonState) String() string {
	if s == ButtonNone {
		return "none"
	}
	out := make([]byte, 0, 4)
	for _, n := range buttonNames {
		if s&n.b != 0 {
			out = append(out, n.c)
		}
	}
	if rest := s &^ (ButtonUp | ButtonDown | ButtonLeft | ButtonRight); rest != 0 {
		out = append(out, '?')
	}
	return string(out)
}

var buttonNames = [...]struct {
	b ButtonState
	c byte
}{
	{ButtonUp, 'U'},
	{ButtonDown, 'D'},
	{ButtonLeft, 'L'},
	{ButtonRight, 'R'},
}

// Buttons samples the control pad. Reads are not debounced; callers must
// tolerate repeated identical snapshots.
type Buttons interface {
	State() ButtonState
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
}

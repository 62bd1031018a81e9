// Package input describes control pad activity as pulse sequences.
//
// A sequence is written one character per pulse: U, D, L, R for a held
// button and _ for nothing, e.g. "_RD____U".
package input

import (
	"fmt"
	"math/rand"
	"strings"

	"blocks/hal"

	"github.com/samber/lo"
)

// Sequence is one button state per pulse. Each pulse holds at most one button.
type Sequence []hal.ButtonState

// Buttons lists the buttons a pulse may hold, in dice order.
var Buttons = []hal.ButtonState{hal.ButtonUp, hal.ButtonDown, hal.ButtonLeft, hal.ButtonRight}

// Parse reads pulse notation.
func Parse(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for i, c := range s {
		b, ok := pulseButton(c)
		if !ok {
			return nil, fmt.Errorf("input: invalid pulse %q at %d", c, i)
		}
		seq = append(seq, b)
	}
	return seq, nil
}

// MustParse is Parse for literals.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

func pulseButton(c rune) (hal.ButtonState, bool) {
	switch c {
	case 'U':
		return hal.ButtonUp, true
	case 'D':
		return hal.ButtonDown, true
	case 'L':
		return hal.ButtonLeft, true
	case 'R':
		return hal.ButtonRight, true
	case '_':
		return hal.ButtonNone, true
	}
	return 0, false
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		if b == hal.ButtonNone {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Presses counts the pulses that hold a button.
func (s Sequence) Presses() int {
	return lo.CountBy(s, func(b hal.ButtonState) bool { return b != hal.ButtonNone })
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	return append(Sequence(nil), s...)
}

// Equal reports whether both sequences hold the same pulses.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// RandomButton rolls an m-sided die: the first len(Buttons) faces pick a
// button, the rest pick no button. Larger m means sparser presses.
func RandomButton(rng *rand.Rand, m int) hal.ButtonState {
	if m <= 0 {
		return hal.ButtonNone
	}
	roll := rng.Intn(m)
	if roll >= len(Buttons) {
		return hal.ButtonNone
	}
	return Buttons[roll]
}

// Random returns a sequence of length pulses drawn with RandomButton.
func Random(rng *rand.Rand, length, m int) Sequence {
	return lo.Times(length, func(int) hal.ButtonState { return RandomButton(rng, m) })
}

// Mutate returns a copy of root with exactly n pulses re-rolled
// (fewer if root is shorter than n). root is not modified.
func Mutate(rng *rand.Rand, root Sequence, n, m int) Sequence {
	out := root.Clone()
	size := len(out)
	for i := 0; i < size && n > 0; i++ {
		if rng.Intn(size-i) < n {
			out[i] = RandomButton(rng, m)
			n--
		}
	}
	return out
}

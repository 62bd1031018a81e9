package hal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPad(t *testing.T, activeLow bool) (*Pad, [4]*virtualPin) {
	t.Helper()
	caps := GPIOCapInput | GPIOCapPullUp | GPIOCapPullDown
	pins := [4]*virtualPin{
		newVirtualPin("UP", caps),
		newVirtualPin("DOWN", caps),
		newVirtualPin("LEFT", caps),
		newVirtualPin("RIGHT", caps),
	}
	pad, err := NewPad(PadPins{
		Up:        pins[0],
		Down:      pins[1],
		Left:      pins[2],
		Right:     pins[3],
		ActiveLow: activeLow,
	})
	require.NoError(t, err)
	return pad, pins
}

func TestPadActiveLow(t *testing.T) {
	pad, pins := newTestPad(t, true)

	require.Equal(t, ButtonNone, pad.State(), "pull-ups idle high")

	pins[1].drive(false)
	require.Equal(t, ButtonDown, pad.State())

	pins[3].drive(false)
	require.Equal(t, ButtonDown|ButtonRight, pad.State())

	pins[1].drive(true)
	pins[3].drive(true)
	require.Equal(t, ButtonNone, pad.State())
}

func TestPadActiveHigh(t *testing.T) {
	pad, pins := newTestPad(t, false)

	require.Equal(t, ButtonNone, pad.State())
	pins[0].drive(true)
	require.Equal(t, ButtonUp, pad.State())
}

func TestPadMissingPin(t *testing.T) {
	down := newVirtualPin("DOWN", GPIOCapInput|GPIOCapPullUp)
	pad, err := NewPad(PadPins{Down: down, ActiveLow: true})
	require.NoError(t, err)

	down.drive(false)
	require.Equal(t, ButtonDown, pad.State())
}

func TestPadRejectsOutputOnlyPin(t *testing.T) {
	_, err := NewPad(PadPins{Up: newVirtualPin("LED", GPIOCapOutput), ActiveLow: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "input unsupported")
}

func TestButtonStateString(t *testing.T) {
	cases := []struct {
		s    ButtonState
		want string
	}{
		{ButtonNone, "none"},
		{ButtonUp, "U"},
		{ButtonDown | ButtonRight, "DR"},
		{ButtonUp | ButtonDown | ButtonLeft | ButtonRight, "UDLR"},
		{0x80, "?"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.s.String())
	}
}

func TestButtonStateHas(t *testing.T) {
	s := ButtonDown | ButtonRight
	require.True(t, s.Has(ButtonDown))
	require.True(t, s.Has(ButtonRight))
	require.False(t, s.Has(ButtonUp))
	require.False(t, s.Has(ButtonNone))
}

package input

import (
	"math/rand"
	"testing"

	"blocks/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	seq, err := Parse("_RD__U_L")
	require.NoError(t, err)
	require.Equal(t, Sequence{
		hal.ButtonNone, hal.ButtonRight, hal.ButtonDown, hal.ButtonNone,
		hal.ButtonNone, hal.ButtonUp, hal.ButtonNone, hal.ButtonLeft,
	}, seq)
	require.Equal(t, "_RD__U_L", seq.String())
	require.Equal(t, 4, seq.Presses())
}

func TestParseRejectsUnknownPulse(t *testing.T) {
	_, err := Parse("_RX")
	require.EqualError(t, err, `input: invalid pulse 'X' at 2`)

	require.Panics(t, func() { MustParse("u") })
}

func TestParseEmpty(t *testing.T) {
	seq, err := Parse("")
	require.NoError(t, err)
	require.Empty(t, seq)
	require.Equal(t, "", seq.String())
}

func TestCloneIsIndependent(t *testing.T) {
	a := MustParse("UDLR")
	b := a.Clone()
	b[0] = hal.ButtonNone

	require.Equal(t, "UDLR", a.String())
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(MustParse("UDLR")))
	require.False(t, a.Equal(MustParse("UDL")))
}

func TestMutateChangesAtMostNPulses(t *testing.T) {
	rng := rand.New(rand.NewSource(854269))
	root := Random(rng, 100, 4)
	snapshot := root.Clone()

	for i := 0; i < 50; i++ {
		got := Mutate(rng, root, 10, 6)
		require.Len(t, got, len(root))

		changed := 0
		for j := range got {
			if got[j] != root[j] {
				changed++
			}
		}
		assert.LessOrEqual(t, changed, 10)
	}
	require.True(t, root.Equal(snapshot), "root untouched")
}

func TestMutateRerollsExactlyN(t *testing.T) {
	// With m=4 every roll lands on a button; starting from all-idle every
	// re-rolled pulse becomes a press.
	rng := rand.New(rand.NewSource(1))
	root := make(Sequence, 40)

	got := Mutate(rng, root, 7, 4)
	require.Equal(t, 7, got.Presses())

	got = Mutate(rng, MustParse("__"), 5, 4)
	require.Equal(t, 2, got.Presses(), "n larger than the sequence")
}

func TestRandomButton(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	require.Equal(t, hal.ButtonNone, RandomButton(rng, 0))

	seen := map[hal.ButtonState]bool{}
	for i := 0; i < 500; i++ {
		seen[RandomButton(rng, 8)] = true
	}
	for _, b := range append(Buttons, hal.ButtonNone) {
		require.True(t, seen[b], b.String())
	}
	require.Len(t, seen, 5)
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)), 64, 6)
	b := Random(rand.New(rand.NewSource(42)), 64, 6)
	require.True(t, a.Equal(b))
}

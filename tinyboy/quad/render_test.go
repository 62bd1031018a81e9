package quad

import (
	"testing"

	"blocks/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClear(t *testing.T) {
	r := &Recorder{}
	Render(r, Clear)

	require.Len(t, r.Cells, hal.PanelCells)
	for i, c := range r.Cells {
		require.Equal(t, CellOff, c, "cell %d", i)
	}
}

func TestRenderUpperLeft(t *testing.T) {
	r := &Recorder{}
	Render(r, UpperLeft)
	require.Len(t, r.Cells, hal.PanelCells)

	on, off := 0, 0
	for i, c := range r.Cells {
		x, y := i%hal.PanelCols, i/hal.PanelCols
		switch c {
		case CellOn:
			on++
			assert.True(t, x < 4 && y < 32, "lit cell (%d,%d) outside upper-left", x, y)
		case CellOff:
			off++
		default:
			t.Fatalf("cell %d = %#x, want 0x00 or 0xFF", i, c)
		}
	}
	require.Equal(t, 128, on)
	require.Equal(t, 384, off)
}

func TestRenderRowMajor(t *testing.T) {
	cells := Frame(UpperRight)

	// First row: four dark cells then four lit cells.
	require.Equal(t, []byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, cells[:8])
	// Row 32 starts the lower half: all dark for upper-right.
	require.Equal(t, make([]byte, 8), cells[32*8:33*8])
}

func TestRenderEveryPatternWritesWholeFrame(t *testing.T) {
	for _, p := range Patterns() {
		require.Len(t, Frame(p), hal.PanelCells, p.String())
	}
}

func TestIdentify(t *testing.T) {
	for _, p := range Patterns() {
		got, ok := Identify(Frame(p))
		require.True(t, ok, p.String())
		require.Equal(t, p, got)
	}

	_, ok := Identify(make([]byte, 10))
	require.False(t, ok)

	mixed := Frame(UpperLeft)
	mixed[len(mixed)-1] = CellOn
	_, ok = Identify(mixed)
	require.False(t, ok)
}

func TestRecorderFrames(t *testing.T) {
	r := &Recorder{}
	Render(r, LowerLeft)
	Render(r, Clear)
	r.WriteCell(CellOn)

	frames := r.Frames()
	require.Len(t, frames, 2)
	p, _ := Identify(frames[0])
	require.Equal(t, LowerLeft, p)
	p, _ = Identify(frames[1])
	require.Equal(t, Clear, p)
}

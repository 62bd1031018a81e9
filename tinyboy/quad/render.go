package quad

import "blocks/hal"

// Cell values. A lit cell turns on all eight of its pixels.
const (
	CellOn  byte = 0xFF
	CellOff byte = 0x00
)

// Cell returns the byte written for (x, y).
func (p Pattern) Cell(x, y int) byte {
	if p.On(x, y) {
		return CellOn
	}
	return CellOff
}

// Render redraws the whole panel with p.
//
// Exactly hal.PanelCells cells are written, y ascending then x ascending;
// the sink has no addressing, so this order is the frame layout.
func Render(d hal.Display, p Pattern) {
	for y := 0; y < hal.PanelRows; y++ {
		for x := 0; x < hal.PanelCols; x++ {
			d.WriteCell(p.Cell(x, y))
		}
	}
}

// Frame returns the cell stream Render emits for p.
func Frame(p Pattern) []byte {
	r := &Recorder{}
	Render(r, p)
	return r.Cells
}

// Identify returns the pattern whose frame equals cells.
func Identify(cells []byte) (Pattern, bool) {
	if len(cells) != hal.PanelCells {
		return 0, false
	}
	for _, p := range Patterns() {
		if matches(p, cells) {
			return p, true
		}
	}
	return 0, false
}

func matches(p Pattern, cells []byte) bool {
	for i, c := range cells {
		if p.Cell(i%hal.PanelCols, i/hal.PanelCols) != c {
			return false
		}
	}
	return true
}

// Recorder is a Display that keeps every cell written to it.
type Recorder struct {
	Cells []byte
}

func (r *Recorder) WriteCell(b byte) { r.Cells = append(r.Cells, b) }

// Frames splits the recording into complete frames, dropping a partial tail.
func (r *Recorder) Frames() [][]byte {
	n := len(r.Cells) / hal.PanelCells
	out := make([][]byte, n)
	for i := range out {
		out[i] = r.Cells[i*hal.PanelCells : (i+1)*hal.PanelCells]
	}
	return out
}

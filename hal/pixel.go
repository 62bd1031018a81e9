package hal

// CellOn reports whether pixel bit of cell (x, y) is lit in a row-major cell buffer.
func CellOn(cells []byte, x, y, bit int) bool {
	i := y*PanelCols + x
	if i < 0 || i >= len(cells) || bit < 0 || bit >= CellBits {
		return false
	}
	return cells[i]&(1<<uint(bit)) != 0
}

// PixelOn maps a panel pixel (px in [0,64), py in [0,64)) onto cell memory.
//
// Cell (x, y) covers pixel row y and pixel columns 8x..8x+7, bit 0 leftmost.
func PixelOn(cells []byte, px, py int) bool {
	return CellOn(cells, px/CellBits, py, px%CellBits)
}

// PanelWidth and PanelHeight are the panel size in pixels.
const (
	PanelWidth  = PanelCols * CellBits
	PanelHeight = PanelRows
)

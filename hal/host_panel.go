//go:build !tinygo

package hal

import (
	"io"
	"sync"
)

// hostPanel emulates the cell memory of the device panel.
type hostPanel struct {
	mu     sync.Mutex
	cells  [PanelCells]byte
	cursor int
	frames uint64

	mirror      io.Writer
	onMirrorErr func(error)
}

func newHostPanel() *hostPanel {
	return &hostPanel{}
}

func (p *hostPanel) WriteCell(b byte) {
	p.mu.Lock()
	p.cells[p.cursor] = b
	p.cursor++
	if p.cursor < PanelCells {
		p.mu.Unlock()
		return
	}
	p.cursor = 0
	p.frames++
	var frame [PanelCells]byte
	if p.mirror != nil {
		frame = p.cells
	}
	p.mu.Unlock()

	if p.mirror == nil {
		return
	}
	if _, err := p.mirror.Write(frame[:]); err != nil && p.onMirrorErr != nil {
		p.onMirrorErr(err)
	}
}

// snapshot copies the cell memory into dst and returns the completed frame count.
func (p *hostPanel) snapshot(dst []byte) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.cells[:])
	return p.frames
}

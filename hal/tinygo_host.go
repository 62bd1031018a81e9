//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
	"time"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	panel  *tinyGoHostPanel
	pad    tinyGoHostPad
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// Frames are logged as they complete and the pad never reports a press.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		panel:  &tinyGoHostPanel{logger: l},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.panel }
func (h *tinyGoHostHAL) Buttons() Buttons { return h.pad }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostPanel struct {
	cells  [PanelCells]byte
	cursor int
	frames uint64
	logger *tinyGoHostLogger
}

func (p *tinyGoHostPanel) WriteCell(b byte) {
	p.cells[p.cursor] = b
	p.cursor++
	if p.cursor < PanelCells {
		return
	}
	p.cursor = 0
	p.frames++

	lit := 0
	for _, c := range p.cells {
		if c != 0 {
			lit++
		}
	}
	p.logger.WriteLineString(fmt.Sprintf("panel: frame %d, %d lit cells (tinygo/%s)", p.frames, lit, runtime.GOOS))
}

type tinyGoHostPad struct{}

func (tinyGoHostPad) State() ButtonState {
	time.Sleep(time.Millisecond)
	return ButtonNone
}

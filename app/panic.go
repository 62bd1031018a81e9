package app

import (
	"context"
	"fmt"
	"image/color"

	"blocks/hal"

	"tinygo.org/x/tinyfont"
)

// guard runs the sequencer and turns a panic into an error, after logging it
// and putting a panic screen on the panel.
func (s *system) guard(ctx context.Context) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err = fmt.Errorf("panic: %v", v)
		s.logf("Blocks Panic: %v", v)
		if d := s.h.Display(); d != nil {
			panicScreen(d, fmt.Sprint(v))
		}
	}()
	return s.seq.Run(ctx)
}

// panicScreen draws a short message and streams the whole frame to d.
func panicScreen(d hal.Display, msg string) {
	c := &cellCanvas{}
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	font := &tinyfont.TomThumb
	tinyfont.WriteLine(c, font, 1, 7, "PANIC", on)

	cols := hal.PanelWidth / 4
	y := int16(16)
	for len(msg) > 0 && int(y) < hal.PanelHeight {
		n := cols
		if n > len(msg) {
			n = len(msg)
		}
		tinyfont.WriteLine(c, font, 1, y, msg[:n], on)
		msg = msg[n:]
		y += 7
	}
	c.flush(d)
}

// cellCanvas is a tinyfont target backed by panel cell memory.
type cellCanvas struct {
	cells [hal.PanelCells]byte
}

func (c *cellCanvas) Size() (x, y int16) {
	return hal.PanelWidth, hal.PanelHeight
}

func (c *cellCanvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= hal.PanelWidth || int(y) >= hal.PanelHeight {
		return
	}
	i := int(y)*hal.PanelCols + int(x)/hal.CellBits
	bit := byte(1) << uint(int(x)%hal.CellBits)
	if col.R|col.G|col.B != 0 {
		c.cells[i] |= bit
	} else {
		c.cells[i] &^= bit
	}
}

func (c *cellCanvas) Display() error { return nil }

func (c *cellCanvas) flush(d hal.Display) {
	for _, b := range c.cells {
		d.WriteCell(b)
	}
}

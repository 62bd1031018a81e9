//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
)

// overlayHeight is the status strip drawn under the panel, in pixels.
const overlayHeight = 8

var (
	panelOn  = color.RGBA{R: 0x9E, G: 0xE7, B: 0xFF, A: 0xFF}
	panelOff = color.RGBA{R: 0x05, G: 0x08, B: 0x0C, A: 0xFF}
	stripBG  = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xFF}
	stripFG  = color.RGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}
)

// panelImage renders cell memory plus a status strip into dst, reallocating
// when dst is nil or the wrong size.
func panelImage(dst *image.RGBA, cells []byte, status string) *image.RGBA {
	bounds := image.Rect(0, 0, PanelWidth, PanelHeight+overlayHeight)
	if dst == nil || dst.Bounds() != bounds {
		dst = image.NewRGBA(bounds)
	}

	for py := 0; py < PanelHeight; py++ {
		for px := 0; px < PanelWidth; px++ {
			c := panelOff
			if PixelOn(cells, px, py) {
				c = panelOn
			}
			dst.SetRGBA(px, py, c)
		}
	}
	for py := PanelHeight; py < PanelHeight+overlayHeight; py++ {
		for px := 0; px < PanelWidth; px++ {
			dst.SetRGBA(px, py, stripBG)
		}
	}

	if status != "" {
		d := &rgbaDisplayer{img: dst}
		tinyfont.WriteLine(d, &tinyfont.TomThumb, 1, int16(PanelHeight+overlayHeight-2), status, stripFG)
	}
	return dst
}

func statusLine(frames uint64, b ButtonState) string {
	return fmt.Sprintf("F%d %s", frames, b)
}

type rgbaDisplayer struct {
	img *image.RGBA
}

func (d *rgbaDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *rgbaDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *rgbaDisplayer) Display() error { return nil }

//go:build !tinygo && cgo

package hal

import (
	"image"

	"blocks/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the panel and maps the
// keyboard onto the control pad. It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	h := newHostHAL(cfg.Host)
	step := newApp(h)

	scale := cfg.Scale
	if scale <= 0 {
		scale = 6
	}

	g := &hostGame{h: h, step: step, scratch: make([]byte, PanelCells)}
	ebiten.SetWindowTitle("TinyBoy blocks (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(PanelWidth*scale, (PanelHeight+overlayHeight)*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frames := g.h.panel.snapshot(g.scratch)
	status := statusLine(frames, ButtonState(g.h.kbd.state.Load()))
	g.img = panelImage(g.img, g.scratch, status)

	if g.fbImg == nil {
		b := g.img.Bounds()
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return PanelWidth, PanelHeight + overlayHeight
}

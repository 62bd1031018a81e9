//go:build tinygo && baremetal

package hal

import (
	"errors"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	oledWidth  = 128
	oledHeight = 64

	// the 64x64 panel is centred on the 128x64 glass
	oledOffsetX = (oledWidth - PanelWidth) / 2
)

var (
	oledOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	oledOff = color.RGBA{A: 0xFF}
)

// ssd1306Panel turns the sequential cell stream into SSD1306 pixels and
// pushes the buffer to the glass each time the cursor wraps.
type ssd1306Panel struct {
	dev    ssd1306.Device
	cursor int
}

func newSSD1306Panel() (*ssd1306Panel, error) {
	if machine.I2C0 == nil {
		return nil, errors.New("I2C0 unavailable")
	}
	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:   oledWidth,
		Height:  oledHeight,
		Address: ssd1306.Address_128_32,
	})
	dev.ClearBuffer()
	if err := dev.Display(); err != nil {
		return nil, err
	}
	return &ssd1306Panel{dev: dev}, nil
}

func (p *ssd1306Panel) WriteCell(b byte) {
	x := p.cursor % PanelCols
	y := p.cursor / PanelCols
	for bit := 0; bit < CellBits; bit++ {
		c := oledOff
		if b&(1<<uint(bit)) != 0 {
			c = oledOn
		}
		p.dev.SetPixel(int16(oledOffsetX+x*CellBits+bit), int16(y), c)
	}

	p.cursor++
	if p.cursor < PanelCells {
		return
	}
	p.cursor = 0
	_ = p.dev.Display()
}

//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	panel  Display
	pad    Buttons
}

// Pico pin mapping. The panel sits on I2C0 and the pad on four pulled-up
// inputs that read low while pressed.
var (
	padUp    = machine.GP10
	padDown  = machine.GP11
	padLeft  = machine.GP12
	padRight = machine.GP13
)

// New returns a Pico (RP2040/RP2350) HAL implementation and performs the
// one-time pin direction setup.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var panel Display
	if p, err := newSSD1306Panel(); err == nil {
		panel = p
	} else {
		logger.WriteLineString("panel: " + err.Error())
		panel = &stubPanel{}
	}

	var pad Buttons
	if p, err := NewPad(PadPins{
		Up:        &machinePin{name: "UP", pin: padUp},
		Down:      &machinePin{name: "DOWN", pin: padDown},
		Left:      &machinePin{name: "LEFT", pin: padLeft},
		Right:     &machinePin{name: "RIGHT", pin: padRight},
		ActiveLow: true,
	}); err == nil {
		pad = p
	} else {
		logger.WriteLineString(err.Error())
		pad = stubButtons{}
	}

	return &tinyGoHAL{
		logger: logger,
		panel:  panel,
		pad:    pad,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.panel }
func (h *tinyGoHAL) Buttons() Buttons { return h.pad }

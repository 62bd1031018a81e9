package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// PadPins names the pin behind each control pad direction.
type PadPins struct {
	Up, Down, Left, Right GPIOPin

	// ActiveLow pins read low while pressed and are configured with a pull-up.
	ActiveLow bool
}

// Pad samples four GPIO inputs into a ButtonState.
type Pad struct {
	pins      [4]GPIOPin
	bits      [4]ButtonState
	activeLow bool
}

// NewPad configures every pin as an input and returns the pad.
//
// This is the one-time direction setup done at process entry; a missing pin
// reads as never pressed.
func NewPad(p PadPins) (*Pad, error) {
	pad := &Pad{
		pins:      [4]GPIOPin{p.Up, p.Down, p.Left, p.Right},
		bits:      [4]ButtonState{ButtonUp, ButtonDown, ButtonLeft, ButtonRight},
		activeLow: p.ActiveLow,
	}
	pull := GPIOPullDown
	if p.ActiveLow {
		pull = GPIOPullUp
	}
	for _, pin := range pad.pins {
		if pin == nil {
			continue
		}
		if err := pin.Configure(GPIOModeInput, pull); err != nil {
			return nil, fmt.Errorf("pad: %w", err)
		}
	}
	return pad, nil
}

// State implements Buttons.
func (p *Pad) State() ButtonState {
	var s ButtonState
	for i, pin := range p.pins {
		if pin == nil {
			continue
		}
		level, err := pin.Read()
		if err != nil {
			continue
		}
		if level != p.activeLow {
			s |= p.bits[i]
		}
	}
	return s
}

type virtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	level bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
		p.level = true
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
		p.level = false
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// drive sets the level seen on an input, as an external switch would.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

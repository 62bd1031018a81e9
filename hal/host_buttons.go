//go:build !tinygo

package hal

import (
	"sync/atomic"
	"time"
)

// hostPollInterval paces State so a spin-wait does not pin a host core.
const hostPollInterval = time.Millisecond

type hostKeyboard struct {
	state atomic.Uint32
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) State() ButtonState {
	time.Sleep(hostPollInterval)
	return ButtonState(k.state.Load())
}

func (k *hostKeyboard) set(s ButtonState) { k.state.Store(uint32(s)) }

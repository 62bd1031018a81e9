//go:build !tinygo

package hal

import (
	"io"

	"go.uber.org/zap"
)

// HostConfig wires the host HAL to its surroundings.
type HostConfig struct {
	// Log receives firmware log lines. Defaults to a zap development logger.
	Log *zap.Logger
	// Buttons replaces the keyboard when set (scripted or headless runs).
	Buttons Buttons
	// Mirror receives a copy of every completed frame.
	Mirror io.Writer
}

type hostHAL struct {
	logger *hostLogger
	panel  *hostPanel
	kbd    *hostKeyboard
	btn    Buttons
}

// New returns a host HAL implementation with default wiring.
func New() HAL {
	return newHostHAL(HostConfig{})
}

// NewHost returns a host HAL implementation wired per cfg.
func NewHost(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	log := cfg.Log
	if log == nil {
		l, err := zap.NewDevelopment()
		if err != nil {
			l = zap.NewNop()
		}
		log = l
	}
	logger := &hostLogger{l: log.Named("fw").Sugar()}

	panel := newHostPanel()
	if cfg.Mirror != nil {
		panel.mirror = cfg.Mirror
		panel.onMirrorErr = func(err error) {
			log.Warn("frame mirror failed", zap.Error(err))
		}
	}

	kbd := newHostKeyboard()
	var btn Buttons = kbd
	if cfg.Buttons != nil {
		btn = cfg.Buttons
	}
	return &hostHAL{
		logger: logger,
		panel:  panel,
		kbd:    kbd,
		btn:    btn,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.panel }
func (h *hostHAL) Buttons() Buttons { return h.btn }

type hostLogger struct {
	l *zap.SugaredLogger
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.l.Info(string(b)) }

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Scale int
}

package input

import (
	"sync"

	"blocks/hal"
)

// Script is a hal.Buttons that plays a Sequence, holding each pulse for a
// fixed number of reads. Once the sequence is spent it calls onDone a single
// time and reads as idle from then on.
type Script struct {
	mu         sync.Mutex
	seq        Sequence
	pulseReads int
	reads      int
	onDone     func()
	done       bool
}

// NewScript returns a script; pulseReads below 1 is treated as 1.
func NewScript(seq Sequence, pulseReads int, onDone func()) *Script {
	if pulseReads < 1 {
		pulseReads = 1
	}
	return &Script{seq: seq, pulseReads: pulseReads, onDone: onDone}
}

func (s *Script) State() hal.ButtonState {
	s.mu.Lock()
	pulse := s.reads / s.pulseReads
	s.reads++
	if pulse < len(s.seq) {
		b := s.seq[pulse]
		s.mu.Unlock()
		return b
	}
	fire := !s.done
	s.done = true
	s.mu.Unlock()

	if fire && s.onDone != nil {
		s.onDone()
	}
	return hal.ButtonNone
}

// Reads reports how many times State has been called.
func (s *Script) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Done reports whether the sequence has been spent.
func (s *Script) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

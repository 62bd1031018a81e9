//go:build !tinygo

package hal

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// SerialMirror streams completed frames to a serial port, for a panel driven
// by a separate board.
type SerialMirror struct {
	mu   sync.Mutex
	port serial.Port
}

// SerialPorts lists the ports visible to the host.
func SerialPorts() ([]string, error) {
	return serial.GetPortsList()
}

// OpenSerialMirror opens the first port whose name contains name.
func OpenSerialMirror(name string, baud int) (*SerialMirror, error) {
	if baud <= 0 {
		baud = 115200
	}
	ports, err := SerialPorts()
	if err != nil {
		return nil, errors.Wrap(err, "list serial ports")
	}

	var matched string
	for _, p := range ports {
		if strings.Contains(p, name) {
			matched = p
			break
		}
	}
	if matched == "" {
		return nil, errors.Errorf("serial port %q not found", name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", matched)
	}
	return &SerialMirror{port: port}, nil
}

func (s *SerialMirror) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.port.Write(p)
	if err != nil {
		return n, errors.Wrap(err, "serial mirror write")
	}
	return n, nil
}

func (s *SerialMirror) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port.Close()
}

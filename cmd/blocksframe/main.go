//go:build !tinygo

// Command blocksframe writes the cell stream of one or more patterns, for
// checking a panel driver or priming one over serial.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"blocks/hal"
	"blocks/tinyboy/quad"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	formatHex = "hex"
	formatBin = "bin"
	formatArt = "art"
)

type options struct {
	patterns []string
	format   string
	out      string
	serial   string
	baud     int
	list     bool
}

func main() {
	if err := run(os.Args[1:], afero.NewOsFs(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, fs afero.Fs, stdout io.Writer) error {
	var o options
	fl := pflag.NewFlagSet("blocksframe", pflag.ContinueOnError)
	fl.StringSliceVarP(&o.patterns, "pattern", "p", []string{"upper-left"}, "Patterns to write, in order ("+strings.Join(quad.Names(), ", ")+").")
	fl.StringVarP(&o.format, "format", "f", formatHex, "Output format: hex, bin or art.")
	fl.StringVarP(&o.out, "out", "o", "-", "Output file, - for stdout.")
	fl.StringVar(&o.serial, "serial", "", "Send binary frames to the serial port whose name contains this.")
	fl.IntVar(&o.baud, "baud", 115200, "Serial baud rate.")
	fl.BoolVar(&o.list, "list", false, "List serial ports and exit.")
	if err := fl.Parse(args); err != nil {
		return err
	}

	if o.list {
		ports, err := hal.SerialPorts()
		if err != nil {
			return errors.Wrap(err, "list serial ports")
		}
		for _, p := range ports {
			fmt.Fprintln(stdout, p)
		}
		return nil
	}

	pats, err := lookupAll(o.patterns)
	if err != nil {
		return err
	}

	if o.serial != "" {
		m, err := hal.OpenSerialMirror(o.serial, o.baud)
		if err != nil {
			return err
		}
		defer m.Close()
		return writeFrames(m, pats, formatBin)
	}

	w := stdout
	if o.out != "-" {
		f, err := fs.OpenFile(o.out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open %s", o.out)
		}
		defer f.Close()
		w = f
	}
	return writeFrames(w, pats, o.format)
}

func lookupAll(names []string) ([]quad.Pattern, error) {
	out := make([]quad.Pattern, 0, len(names))
	for _, n := range names {
		p, ok := quad.Lookup(n)
		if !ok {
			return nil, errors.Errorf("unknown pattern %q", n)
		}
		out = append(out, p)
	}
	return out, nil
}

func writeFrames(w io.Writer, pats []quad.Pattern, format string) error {
	for _, p := range pats {
		frame := quad.Frame(p)
		var err error
		switch format {
		case formatBin:
			_, err = w.Write(frame)
		case formatHex:
			err = writeHex(w, frame)
		case formatArt:
			err = writeArt(w, p, frame)
		default:
			return errors.Errorf("unknown format %q", format)
		}
		if err != nil {
			return errors.Wrapf(err, "write %s", p)
		}
	}
	return nil
}

// writeHex prints one panel row of cells per line.
func writeHex(w io.Writer, frame []byte) error {
	for _, row := range lo.Chunk(frame, hal.PanelCols) {
		if _, err := fmt.Fprintln(w, hex.EncodeToString(row)); err != nil {
			return err
		}
	}
	return nil
}

// writeArt prints the panel as characters, one pixel each.
func writeArt(w io.Writer, p quad.Pattern, frame []byte) error {
	if _, err := fmt.Fprintf(w, "# %s\n", p); err != nil {
		return err
	}
	line := make([]byte, hal.PanelWidth+1)
	line[hal.PanelWidth] = '\n'
	for py := 0; py < hal.PanelHeight; py++ {
		for px := 0; px < hal.PanelWidth; px++ {
			line[px] = '.'
			if hal.PixelOn(frame, px, py) {
				line[px] = '#'
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

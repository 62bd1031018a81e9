// Package quad paints the fixed quadrant patterns onto the panel.
package quad

import (
	"blocks/hal"

	"github.com/samber/lo"
)

// Quadrant boundaries in cell coordinates.
const (
	MidX = hal.PanelCols / 2
	MidY = hal.PanelRows / 2
)

// Pattern selects one of the fixed frames.
type Pattern uint8

const (
	UpperLeft Pattern = iota
	LowerLeft
	UpperRight
	LowerRight
	Clear
)

type entry struct {
	name string
	on   func(x, y int) bool
}

func quadrant(name string, left, upper bool) entry {
	return entry{name: name, on: func(x, y int) bool {
		return (x < MidX) == left && (y < MidY) == upper
	}}
}

var table = [...]entry{
	UpperLeft:  quadrant("upper-left", true, true),
	LowerLeft:  quadrant("lower-left", true, false),
	UpperRight: quadrant("upper-right", false, true),
	LowerRight: quadrant("lower-right", false, false),
	Clear:      {name: "clear", on: func(int, int) bool { return false }},
}

// Patterns lists every pattern in table order.
func Patterns() []Pattern {
	return lo.Times(len(table), func(i int) Pattern { return Pattern(i) })
}

// Names lists every pattern name in table order.
func Names() []string {
	return lo.Map(Patterns(), func(p Pattern, _ int) string { return p.String() })
}

// Lookup resolves a pattern by name.
func Lookup(name string) (Pattern, bool) {
	return lo.Find(Patterns(), func(p Pattern) bool { return p.String() == name })
}

func (p Pattern) valid() bool { return int(p) < len(table) }

func (p Pattern) String() string {
	if !p.valid() {
		return "pattern(?)"
	}
	return table[p].name
}

// On reports whether cell (x, y) is lit. Out-of-range patterns are dark.
func (p Pattern) On(x, y int) bool {
	if !p.valid() {
		return false
	}
	return table[p].on(x, y)
}

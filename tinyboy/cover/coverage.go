// Package cover measures which sequencer branches an input sequence reaches
// and searches for sequences that reach all of them.
package cover

import (
	"context"

	"blocks/tinyboy/input"
	"blocks/tinyboy/quad"
	"blocks/tinyboy/seq"

	"github.com/samber/lo"
)

// Coverage is the set of edges one or more runs reached in a mode.
type Coverage struct {
	mode seq.Mode
	hits map[seq.Edge]int
}

// New returns empty coverage for mode.
func New(mode seq.Mode) *Coverage {
	return &Coverage{mode: mode, hits: map[seq.Edge]int{}}
}

func (c *Coverage) Mode() seq.Mode { return c.mode }

// Record counts one traversal of e.
func (c *Coverage) Record(e seq.Edge) { c.hits[e]++ }

// Hits reports how often e was traversed.
func (c *Coverage) Hits(e seq.Edge) int { return c.hits[e] }

// Covered lists the reached edges in mode order.
func (c *Coverage) Covered() []seq.Edge {
	return lo.Filter(seq.Edges(c.mode), func(e seq.Edge, _ int) bool { return c.hits[e] > 0 })
}

// Missing lists the edges never reached, in mode order.
func (c *Coverage) Missing() []seq.Edge {
	return lo.Filter(seq.Edges(c.mode), func(e seq.Edge, _ int) bool { return c.hits[e] == 0 })
}

// Percent is the share of the mode's edges reached.
func (c *Coverage) Percent() float64 {
	all := seq.Edges(c.mode)
	if len(all) == 0 {
		return 0
	}
	return 100 * float64(len(c.Covered())) / float64(len(all))
}

// Complete reports whether every edge was reached.
func (c *Coverage) Complete() bool { return len(c.Missing()) == 0 }

// SubsumedBy reports whether o reached every edge c reached.
func (c *Coverage) SubsumedBy(o *Coverage) bool {
	return lo.EveryBy(c.Covered(), func(e seq.Edge) bool { return o.hits[e] > 0 })
}

// Merge adds o's hits into c.
func (c *Coverage) Merge(o *Coverage) {
	for e, n := range o.hits {
		c.hits[e] += n
	}
}

// Result is the outcome of playing one sequence.
type Result struct {
	Input    input.Sequence
	Coverage *Coverage
	Renders  []quad.Pattern
	// Halted is set when the sequencer finished before the input ran out.
	Halted bool
}

// Run plays in against a fresh sequencer in mode, holding each pulse for
// pulseReads reads of the button source.
func Run(mode seq.Mode, in input.Sequence, pulseReads int) Result {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res := Result{Input: in, Coverage: New(mode)}
	src := input.NewScript(in, pulseReads, cancel)
	s := seq.New(mode, discard{}, src, seq.Hooks{
		OnRender: func(p quad.Pattern) { res.Renders = append(res.Renders, p) },
		OnEdge:   res.Coverage.Record,
	})
	res.Halted = s.Run(ctx) == nil
	return res
}

type discard struct{}

func (discard) WriteCell(byte) {}

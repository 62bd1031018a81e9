package cover

import (
	"math/rand"
	"sort"

	"blocks/tinyboy/input"
	"blocks/tinyboy/seq"
)

// GeneratorConfig tunes the search. Zero fields take the defaults below.
type GeneratorConfig struct {
	Mode       seq.Mode
	Seed       int64
	Pulses     int // sequence length, default 100
	PulseReads int // reads per pulse, default 1
	Mutations  int // pulses re-rolled per child, default Pulses/3
	Dice       int // die size for each re-roll, default 4
	Children   int // children per parent, default 4
	Parents    int // parents kept per round, default 2

	// OnResult, if set, sees every evaluated sequence.
	OnResult func(Result)
}

func (c *GeneratorConfig) applyDefaults() {
	if c.Pulses <= 0 {
		c.Pulses = 100
	}
	if c.PulseReads <= 0 {
		c.PulseReads = 1
	}
	if c.Mutations <= 0 {
		c.Mutations = c.Pulses / 3
	}
	if c.Dice <= 0 {
		c.Dice = 4
	}
	if c.Children <= 0 {
		c.Children = 4
	}
	if c.Parents <= 0 {
		c.Parents = 2
	}
}

// Generator evolves input sequences toward full edge coverage: it evaluates
// a seed corpus, keeps the best parents, and mutates them each round.
type Generator struct {
	cfg     GeneratorConfig
	rng     *rand.Rand
	seeds   []input.Sequence
	parents []Result
	total   *Coverage
	evals   int
}

// NewGenerator returns a generator; the same config and seeds replay the same search.
func NewGenerator(cfg GeneratorConfig) *Generator {
	cfg.applyDefaults()
	return &Generator{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		total: New(cfg.Mode),
	}
}

// AddSeeds queues hand-written sequences to evaluate before any mutation.
func (g *Generator) AddSeeds(seqs ...input.Sequence) {
	g.seeds = append(g.seeds, seqs...)
}

// Report summarises a search.
type Report struct {
	Best      Result
	Total     *Coverage
	Evaluated int
	Rounds    int
}

// Search runs up to rounds mutation rounds, stopping early once the merged
// coverage is complete.
func (g *Generator) Search(rounds int) Report {
	pool := make([]Result, 0, len(g.seeds)+1)
	for _, s := range g.seeds {
		pool = append(pool, g.eval(s))
	}
	pool = append(pool, g.eval(input.Random(g.rng, g.cfg.Pulses, g.cfg.Dice)))
	g.parents = g.pick(pool)

	done := 0
	for done < rounds && !g.total.Complete() {
		pool = append([]Result(nil), g.parents...)
		for _, p := range g.parents {
			for i := 0; i < g.cfg.Children; i++ {
				child := input.Mutate(g.rng, p.Input, g.cfg.Mutations, g.cfg.Dice)
				pool = append(pool, g.eval(child))
			}
		}
		g.parents = g.pick(pool)
		done++
	}

	return Report{
		Best:      g.parents[0],
		Total:     g.total,
		Evaluated: g.evals,
		Rounds:    done,
	}
}

func (g *Generator) eval(in input.Sequence) Result {
	res := Run(g.cfg.Mode, in, g.cfg.PulseReads)
	g.evals++
	g.total.Merge(res.Coverage)
	if g.cfg.OnResult != nil {
		g.cfg.OnResult(res)
	}
	return res
}

// pick keeps the strongest results: more edges first, then fewer presses.
// A result whose coverage is subsumed by an already kept one is only taken
// when nothing else is left.
func (g *Generator) pick(pool []Result) []Result {
	sort.SliceStable(pool, func(i, j int) bool {
		ci, cj := len(pool[i].Coverage.Covered()), len(pool[j].Coverage.Covered())
		if ci != cj {
			return ci > cj
		}
		return pool[i].Input.Presses() < pool[j].Input.Presses()
	})

	kept := make([]Result, 0, g.cfg.Parents)
	var spare []Result
	for _, r := range pool {
		if len(kept) == g.cfg.Parents {
			break
		}
		subsumed := false
		for _, k := range kept {
			if r.Coverage.SubsumedBy(k.Coverage) {
				subsumed = true
				break
			}
		}
		if subsumed {
			spare = append(spare, r)
			continue
		}
		kept = append(kept, r)
	}
	for _, r := range spare {
		if len(kept) == g.cfg.Parents {
			break
		}
		kept = append(kept, r)
	}
	return kept
}

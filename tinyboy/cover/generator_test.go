package cover

import (
	"testing"

	"blocks/tinyboy/input"
	"blocks/tinyboy/seq"

	"github.com/stretchr/testify/require"
)

func TestGeneratorReachesFullCoverage(t *testing.T) {
	for _, mode := range []seq.Mode{seq.Linear, seq.Looping} {
		t.Run(mode.String(), func(t *testing.T) {
			g := NewGenerator(GeneratorConfig{Mode: mode, Seed: 854269, Pulses: 60})
			rep := g.Search(200)

			require.True(t, rep.Total.Complete(), "missing %v", rep.Total.Missing())
			require.Positive(t, rep.Evaluated)
			require.LessOrEqual(t, rep.Rounds, 200)
		})
	}
}

func TestGeneratorSeedsFirst(t *testing.T) {
	var seen []string
	g := NewGenerator(GeneratorConfig{
		Mode:     seq.Looping,
		Seed:     1,
		Pulses:   10,
		OnResult: func(r Result) { seen = append(seen, r.Input.String()) },
	})
	g.AddSeeds(input.MustParse("D_R_R_D_U_"))
	rep := g.Search(5)

	require.Equal(t, "D_R_R_D_U_", seen[0])
	require.True(t, rep.Total.Complete())
	require.Zero(t, rep.Rounds, "a complete seed needs no mutation")
	require.Equal(t, "D_R_R_D_U_", rep.Best.Input.String())
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := GeneratorConfig{Mode: seq.Looping, Seed: 99, Pulses: 30, Dice: 8}
	a := NewGenerator(cfg).Search(10)
	b := NewGenerator(cfg).Search(10)

	require.Equal(t, a.Evaluated, b.Evaluated)
	require.Equal(t, a.Best.Input.String(), b.Best.Input.String())
}

func TestPickPrefersNewEdges(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Mode: seq.Looping, Parents: 2})

	down := Run(seq.Looping, input.MustParse("DR"), 1)
	downAgain := Run(seq.Looping, input.MustParse("DRDR"), 1)
	right := Run(seq.Looping, input.MustParse("RDRD"), 1)

	kept := g.pick([]Result{down, downAgain, right})
	require.Len(t, kept, 2)
	require.Equal(t, "DR", kept[0].Input.String(), "fewer presses wins a tie")
	require.Equal(t, "RDRD", kept[1].Input.String(), "subsumed result skipped")
}

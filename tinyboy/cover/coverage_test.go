package cover

import (
	"testing"

	"blocks/tinyboy/input"
	"blocks/tinyboy/quad"
	"blocks/tinyboy/seq"

	"github.com/stretchr/testify/require"
)

func TestRunLinearManualSequence(t *testing.T) {
	// The hand-written sequence used to cover the linear program.
	res := Run(seq.Linear, input.MustParse("_RD____U_ULDD___D_LURDD_UL___R____LLR__L_U_D_DD__R"), 3)

	require.True(t, res.Halted)
	require.True(t, res.Coverage.Complete())
	require.Equal(t, 100.0, res.Coverage.Percent())
	require.Equal(t, []quad.Pattern{quad.UpperLeft, quad.LowerLeft, quad.LowerRight, quad.UpperRight}, res.Renders)
}

func TestRunLinearStalls(t *testing.T) {
	res := Run(seq.Linear, input.MustParse("__D__U"), 1)

	require.False(t, res.Halted)
	require.Equal(t, []seq.Edge{seq.EdgeLinearDown}, res.Coverage.Covered())
	require.Equal(t, []seq.Edge{seq.EdgeLinearRight, seq.EdgeLinearUp}, res.Coverage.Missing())
	require.InDelta(t, 33.33, res.Coverage.Percent(), 0.01)
}

func TestRunLoopingManualSequence(t *testing.T) {
	res := Run(seq.Looping, input.MustParse("_RD____U_ULDD___D_LURDD_UL___R____LLR__L_U_D_DD__R"), 1)

	require.False(t, res.Halted)
	require.True(t, res.Coverage.Complete(), "missing %v", res.Coverage.Missing())
}

func TestRunLoopingOtherOnly(t *testing.T) {
	res := Run(seq.Looping, input.MustParse("U_L"), 1)

	require.Equal(t, 2, res.Coverage.Hits(seq.EdgeLoopOther))
	require.Equal(t, []seq.Edge{seq.EdgeLoopOther}, res.Coverage.Covered())
	require.Equal(t, []quad.Pattern{quad.UpperLeft, quad.UpperLeft, quad.UpperLeft}, res.Renders)
}

func TestCoverageSubsumedByAndMerge(t *testing.T) {
	a := New(seq.Looping)
	a.Record(seq.EdgeLoopDown)

	b := New(seq.Looping)
	b.Record(seq.EdgeLoopDown)
	b.Record(seq.EdgeBranchDownDone)

	require.True(t, a.SubsumedBy(b))
	require.False(t, b.SubsumedBy(a))
	require.True(t, New(seq.Looping).SubsumedBy(a), "empty coverage is subsumed by anything")

	a.Merge(b)
	require.Equal(t, 2, a.Hits(seq.EdgeLoopDown))
	require.Equal(t, 1, a.Hits(seq.EdgeBranchDownDone))
	require.Equal(t, 40.0, a.Percent())
}

func TestCoverageUnknownMode(t *testing.T) {
	c := New(seq.Mode(5))
	require.Zero(t, c.Percent())
	require.True(t, c.Complete())
}

//go:build !tinygo

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasureOnly(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--mode", "linear", "--rounds", "0", "-i", "DRU"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "input DRU: 100% (3 presses, halted)")
	require.NotContains(t, out.String(), "search:")
}

func TestSearchReachesLoopingEdges(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--seed", "7", "--rounds", "50", "-i", "DRRD"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "100% of edges reached")
	require.NotContains(t, out.String(), "missing:")
}

func TestRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run([]string{"-i", "DX"}, &out))
	require.Error(t, run([]string{"--mode", "sideways"}, &out))
}

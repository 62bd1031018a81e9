//go:build !tinygo

package main

import (
	"bytes"
	"strings"
	"testing"

	"blocks/hal"
	"blocks/tinyboy/quad"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestHexToStdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-p", "upper-left"}, afero.NewMemMapFs(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, hal.PanelRows)
	require.Equal(t, "ffffffff00000000", lines[0])
	require.Equal(t, "0000000000000000", lines[hal.PanelRows-1])
}

func TestBinaryToFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	require.NoError(t, run([]string{"-p", "lower-right,clear", "-f", "bin", "-o", "/frames.bin"}, fs, &out))
	require.Zero(t, out.Len())

	b, err := afero.ReadFile(fs, "/frames.bin")
	require.NoError(t, err)
	require.Len(t, b, 2*hal.PanelCells)

	p, ok := quad.Identify(b[:hal.PanelCells])
	require.True(t, ok)
	require.Equal(t, quad.LowerRight, p)
	p, ok = quad.Identify(b[hal.PanelCells:])
	require.True(t, ok)
	require.Equal(t, quad.Clear, p)
}

func TestArt(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-p", "upper-right", "-f", "art"}, afero.NewMemMapFs(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "# upper-right", lines[0])
	require.Len(t, lines, hal.PanelHeight+1)
	require.Equal(t, strings.Repeat(".", 32)+strings.Repeat("#", 32), lines[1])
	require.Equal(t, strings.Repeat(".", 64), lines[hal.PanelHeight])
}

func TestRejectsUnknown(t *testing.T) {
	var out bytes.Buffer
	require.ErrorContains(t, run([]string{"-p", "middle"}, afero.NewMemMapFs(), &out), "unknown pattern")
	require.ErrorContains(t, run([]string{"-f", "png"}, afero.NewMemMapFs(), &out), "unknown format")
}

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rebin/dsp/grid"
	"github.com/cwbudde/algo-rebin/dsp/rebin"
)

func TestReadSpectrum(t *testing.T) {
	const data = `wavelength,flux
# calibrated
1.0, 2
1.5, 4
2.5, 8
`
	g, v, err := readSpectrum(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, grid.Grid{1, 1.5, 2.5}, g)
	assert.Equal(t, []float64{2, 4, 8}, v)
}

func TestReadSpectrumErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad value", "1,2\n2,x\n"},
		{"single field", "1,2\n3\n"},
		{"too few", "1,2\n"},
		{"unsorted", "1,2\n3,4\n2,5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readSpectrum(strings.NewReader(tt.data))
			require.Error(t, err)
		})
	}
}

func TestOutputGrid(t *testing.T) {
	in, err := grid.Uniform(0, 0.5, 21)
	require.NoError(t, err)

	out, err := outputGrid(in, 0)
	require.NoError(t, err)
	assert.Len(t, out, 6)
	assert.Equal(t, 2.0, out.Step(0))

	_, err = outputGrid(in, 20)
	require.Error(t, err)
	_, err = outputGrid(in, -1)
	require.Error(t, err)
}

func TestParseShape(t *testing.T) {
	s, err := parseShape("37x41")
	require.NoError(t, err)
	assert.Equal(t, rebin.Shape{Cols: 37, Rows: 41}, s)
	assert.Equal(t, "37x41", formatShape(s))

	for _, bad := range []string{"", "12", "0x4", "4x-1", "ax3"} {
		_, err := parseShape(bad)
		assert.Error(t, err, bad)
	}
}

func TestRunSpectrumConservesFlux(t *testing.T) {
	o := options{n: 1000, workers: 3}
	rep, err := runSpectrum(o, []rebin.Option{rebin.WithWorkers(o.workers)})
	require.NoError(t, err)

	assert.Equal(t, "box", rep.regime)
	assert.Equal(t, "1000", rep.inSize)
	assert.Equal(t, "250", rep.outSize)
	assert.InDelta(t, 1, rep.outFlux/rep.inFlux, 0.01)
}

func TestRunSpectrumFinerGridInterpolates(t *testing.T) {
	rep, err := runSpectrum(options{n: 200, step: 0.5}, nil)
	require.NoError(t, err)
	assert.Equal(t, "interpolate", rep.regime)
	assert.Equal(t, "399", rep.outSize)
}

func TestRunImageConservesFlux(t *testing.T) {
	rep, err := runImage(options{size: "128x96", to: "50x37"}, []rebin.Option{rebin.WithWorkers(4)})
	require.NoError(t, err)

	assert.Equal(t, "128x96", rep.inSize)
	assert.Equal(t, "50x37", rep.outSize)
	assert.InDelta(t, 1, rep.outFlux/rep.inFlux, 1e-9)
}

func TestPlotSpectrum(t *testing.T) {
	in, values, err := syntheticSpectrum(100)
	require.NoError(t, err)
	out, err := outputGrid(in, 0)
	require.NoError(t, err)
	res, err := rebin.Rebin1D(out, in, values)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "spectrum.png")
	require.NoError(t, plotSpectrum(path, in, values, out, res))
	assert.FileExists(t, path)
}

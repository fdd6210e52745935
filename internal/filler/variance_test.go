package filler

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// The reference shape: count 270, fan-in 270/10 = 27, fan-out 270/3 = 90.
var varianceShape = tensor.Shape{10, 3, 3, 3}

// checkWithin fails if any element lies outside [-bound, bound].
func checkWithin(t *testing.T, data []float64, bound float64) {
	t.Helper()
	for i, v := range data {
		if v < -bound || v > bound {
			t.Fatalf("element %d = %v outside [-%v, %v]", i, v, bound, bound)
		}
	}
}

// TestXavierFillFanIn verifies the fan-in bound sqrt(3/27) = 1/3.
func TestXavierFillFanIn(t *testing.T) {
	f, err := New[float64](NewConfig(TypeXavier), rng.NewSource(1))
	require.NoError(t, err)

	blob, err := tensor.New[float64](varianceShape)
	require.NoError(t, err)
	require.NoError(t, f.Fill(blob))
	checkWithin(t, blob.Data(), 0.3334)
}

// TestXavierFillFanOut verifies the fan-out bound sqrt(3/90).
func TestXavierFillFanOut(t *testing.T) {
	cfg := NewConfig(TypeXavier)
	cfg.VarianceNorm = FanOut

	f, err := New[float64](cfg, rng.NewSource(2))
	require.NoError(t, err)

	blob, err := tensor.New[float64](varianceShape)
	require.NoError(t, err)
	require.NoError(t, f.Fill(blob))
	checkWithin(t, blob.Data(), math.Sqrt(3.0/90.0)+1e-4)
}

// TestXavierFillAverage verifies the averaged bound sqrt(3/58.5).
func TestXavierFillAverage(t *testing.T) {
	cfg := NewConfig(TypeXavier)
	cfg.VarianceNorm = Average

	f, err := New[float64](cfg, rng.NewSource(3))
	require.NoError(t, err)

	blob, err := tensor.New[float64](varianceShape)
	require.NoError(t, err)
	require.NoError(t, f.Fill(blob))
	checkWithin(t, blob.Data(), math.Sqrt(3.0/58.5)+1e-4)
}

// TestMSRAFillStdDev verifies the empirical stddev approximates
// sqrt(2/27) over many draws.
func TestMSRAFillStdDev(t *testing.T) {
	f, err := New[float64](NewConfig(TypeMSRA), rng.NewSource(4))
	require.NoError(t, err)

	blob, err := tensor.New[float64](varianceShape)
	require.NoError(t, err)

	samples := make([]float64, 0, 100*blob.Count())
	for i := 0; i < 100; i++ {
		require.NoError(t, f.Fill(blob))
		samples = append(samples, blob.Data()...)
	}
	assert.InDelta(t, math.Sqrt(2.0/27.0), stat.StdDev(samples, nil), 0.01)
	assert.InDelta(t, 0.0, stat.Mean(samples, nil), 0.01)
}

// TestMSRAFillScale verifies the configured scale multiplies the derived
// stddev.
func TestMSRAFillScale(t *testing.T) {
	cfg := NewConfig(TypeMSRA)
	cfg.Scale = 0.5

	f, err := New[float64](cfg, rng.NewSource(5))
	require.NoError(t, err)

	blob, err := tensor.New[float64](varianceShape)
	require.NoError(t, err)

	samples := make([]float64, 0, 100*blob.Count())
	for i := 0; i < 100; i++ {
		require.NoError(t, f.Fill(blob))
		samples = append(samples, blob.Data()...)
	}
	assert.InDelta(t, 0.5*math.Sqrt(2.0/27.0), stat.StdDev(samples, nil), 0.01)
}

// TestMSRAFillFanOutStdDev verifies fan-out normalization: std sqrt(2/90).
func TestMSRAFillFanOutStdDev(t *testing.T) {
	cfg := NewConfig(TypeMSRA)
	cfg.VarianceNorm = FanOut

	f, err := New[float64](cfg, rng.NewSource(6))
	require.NoError(t, err)

	blob, err := tensor.New[float64](varianceShape)
	require.NoError(t, err)

	samples := make([]float64, 0, 100*blob.Count())
	for i := 0; i < 100; i++ {
		require.NoError(t, f.Fill(blob))
		samples = append(samples, blob.Data()...)
	}
	assert.InDelta(t, math.Sqrt(2.0/90.0), stat.StdDev(samples, nil), 0.01)
}

// TestVarianceFillersNeedTwoAxes verifies fan-out derivation requires a
// second axis.
func TestVarianceFillersNeedTwoAxes(t *testing.T) {
	for _, typ := range []string{TypeXavier, TypeMSRA} {
		f, err := New[float32](NewConfig(typ), rng.NewSource(7))
		require.NoError(t, err, "type %q", typ)

		blob, err := tensor.New[float32](tensor.Shape{12})
		require.NoError(t, err)

		err = f.Fill(blob)
		assert.True(t, errors.Is(err, ErrUnsupportedRank), "type %q: %v", typ, err)
	}
}

package filler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// TestPositiveUnitBallFill verifies every row sums to 1 and all elements stay
// in [0, 1].
func TestPositiveUnitBallFill(t *testing.T) {
	f, err := New[float64](NewConfig(TypePositiveUnitBall), rng.NewSource(1))
	require.NoError(t, err)

	blob, err := tensor.New[float64](tensor.Shape{8, 50})
	require.NoError(t, err)
	require.NoError(t, f.Fill(blob))

	data := blob.Data()
	for r := 0; r < 8; r++ {
		row := data[r*50 : (r+1)*50]
		sum := 0.0
		for _, v := range row {
			if v < 0 || v > 1 {
				t.Fatalf("row %d has element %v outside [0, 1]", r, v)
			}
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d", r)
	}
}

// TestPositiveUnitBallFillMultiAxis verifies rows span all trailing axes:
// shape (R, ...) normalizes R rows of count/R elements.
func TestPositiveUnitBallFillMultiAxis(t *testing.T) {
	f, err := New[float32](NewConfig(TypePositiveUnitBall), rng.NewSource(2))
	require.NoError(t, err)

	blob, err := tensor.New[float32](tensor.Shape{4, 3, 5, 5})
	require.NoError(t, err)
	require.NoError(t, f.Fill(blob))

	dim := blob.Count() / 4
	data := blob.Data()
	for r := 0; r < 4; r++ {
		sum := 0.0
		for _, v := range data[r*dim : (r+1)*dim] {
			sum += float64(v)
		}
		assert.InDelta(t, 1.0, sum, 1e-4, "row %d", r)
	}
}

package filler

import (
	"fmt"

	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// PositiveUnitBallFiller draws uniform values in [0, 1) and normalizes each
// of the blob's shape(0) rows to sum to 1, so every element stays in [0, 1].
type PositiveUnitBallFiller[T tensor.Float] struct {
	cfg Config
	src rng.Source
}

// Fill overwrites every element and normalizes row sums.
func (f *PositiveUnitBallFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	if blob.NumAxes() < 1 {
		return fmt.Errorf("%w: positive_unitball needs at least one axis", ErrShapeMismatch)
	}
	rows := blob.Dim(0)
	dim := blob.Count() / rows
	if dim == 0 {
		return fmt.Errorf("%w: zero elements per row", ErrShapeMismatch)
	}

	data := blob.Data()
	drawUniform(data, 0, 1, f.src)

	// Fillers run once per blob, so the straightforward per-row pass is fine.
	for r := 0; r < rows; r++ {
		row := data[r*dim : (r+1)*dim]
		var sum T
		for _, v := range row {
			sum += v
		}
		for j := range row {
			row[j] /= sum
		}
	}
	return nil
}

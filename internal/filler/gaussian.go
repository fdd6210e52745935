package filler

import (
	"fmt"

	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// GaussianFiller draws every element from N(Config.Mean, Config.Std), with
// optional sparsification.
//
// Sparse initialization targets weight matrices: axis 0 is the number of
// outputs, and Config.Sparse is the mean number of non-zero inputs per
// output. Each element is kept with probability Sparse/shape(0) and zeroed
// otherwise.
type GaussianFiller[T tensor.Float] struct {
	cfg Config
	src rng.Source
}

// Fill overwrites every element with a Gaussian draw, then applies the
// Bernoulli keep-mask when sparsity is requested.
func (f *GaussianFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkCount(blob); err != nil {
		return err
	}
	sparse := f.cfg.Sparse
	if sparse < NoSparsity {
		return fmt.Errorf("%w (sparse=%d)", ErrInvalidSparsity, sparse)
	}
	if sparse >= 0 && blob.NumAxes() < 1 {
		return fmt.Errorf("%w: sparse initialization needs at least one axis", ErrShapeMismatch)
	}

	drawGaussian(blob.Data(), f.cfg.Mean, f.cfg.Std, f.src)

	if sparse >= 0 {
		numOutputs := blob.Dim(0)
		nonZeroProbability := float64(sparse) / float64(numOutputs)

		// The mask is scratch storage scoped to this call.
		mask := make([]int, blob.Count())
		f.src.FillBernoulli(mask, nonZeroProbability)

		data := blob.Data()
		for i, keep := range mask {
			data[i] *= T(keep)
		}
	}
	return nil
}

package filler

import (
	"fmt"
	"math"

	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// fanCount derives the variance-normalizing connection count from the blob
// shape: fan-in = count/shape(0), fan-out = count/shape(1), averaged in
// floating point when requested.
func fanCount[T tensor.Float](blob *tensor.Blob[T], norm VarianceNorm) (float64, error) {
	if blob.NumAxes() < 2 {
		return 0, fmt.Errorf("%w: variance-scaled fillers need at least 2 axes, got %d",
			ErrUnsupportedRank, blob.NumAxes())
	}
	fanIn := float64(blob.Count() / blob.Dim(0))
	fanOut := float64(blob.Count() / blob.Dim(1))
	switch norm {
	case Average:
		return (fanIn + fanOut) / 2, nil
	case FanOut:
		return fanOut, nil
	default:
		return fanIn, nil
	}
}

// XavierFiller draws uniformly from [-sqrt(3/n), sqrt(3/n)] where n is the
// fan count selected by Config.VarianceNorm.
//
// Based on Bengio and Glorot 2010, "Understanding the difficulty of training
// deep feedforward neural networks": the bound keeps the output variance of a
// linear layer approximately equal to its input variance. The blob is
// expected to have shape (num, a, b, c) where a*b*c = fan-in and
// num*b*c = fan-out.
type XavierFiller[T tensor.Float] struct {
	cfg Config
	src rng.Source
}

// Fill overwrites every element with a variance-scaled uniform draw.
func (f *XavierFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	n, err := fanCount(blob, f.cfg.VarianceNorm)
	if err != nil {
		return err
	}
	bound := math.Sqrt(3 / n)
	drawUniform(blob.Data(), -bound, bound, f.src)
	return nil
}

// MSRAFiller draws from N(0, Config.Scale * sqrt(2/n)) where n is the fan
// count selected by Config.VarianceNorm.
//
// Based on He, Zhang, Ren and Sun 2015: the extra factor of 2 compensates for
// the variance-halving effect of a rectifying nonlinearity.
type MSRAFiller[T tensor.Float] struct {
	cfg Config
	src rng.Source
}

// Fill overwrites every element with a variance-scaled Gaussian draw.
func (f *MSRAFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	n, err := fanCount(blob, f.cfg.VarianceNorm)
	if err != nil {
		return err
	}
	std := f.cfg.Scale * math.Sqrt(2/n)
	drawGaussian(blob.Data(), 0, std, f.src)
	return nil
}

package filler

import (
	"fmt"

	"github.com/prime-ml/prime/internal/tensor"
)

// KernelGenerator produces a bank of fixed convolution kernels. The Gabor
// filler treats the generator as an opaque collaborator: it only relies on
// this invocation contract, not on the synthesis algorithm.
type KernelGenerator interface {
	// Generate computes the kernel coefficients.
	Generate()
	// KernelData returns the flat coefficient buffer.
	KernelData() []float64
	// KernelSize returns the number of coefficients.
	KernelSize() int
}

// GeneratorFunc constructs a KernelGenerator for a bank of numFilters square
// kernels of spatialSize x spatialSize.
type GeneratorFunc func(numFilters, spatialSize int) KernelGenerator

// GaborFiller seeds a first convolution layer with a bank of Gabor filters,
// the common choice for fixed edge detectors.
//
// The target blob must have at most 4 axes, square spatial dimensions, and
// exactly 3 channels. The generator's buffer is copied into the blob
// verbatim, so its size must equal the blob's element count.
type GaborFiller[T tensor.Float] struct {
	cfg          Config
	newGenerator GeneratorFunc
}

// NewGaborFiller creates a Gabor filler that delegates kernel synthesis to
// generators built by newGenerator.
func NewGaborFiller[T tensor.Float](cfg Config, newGenerator GeneratorFunc) *GaborFiller[T] {
	if newGenerator == nil {
		panic("filler: nil kernel generator constructor")
	}
	return &GaborFiller[T]{cfg: cfg, newGenerator: newGenerator}
}

// Fill overwrites every element with the generated kernel bank.
func (f *GaborFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	if blob.NumAxes() > 4 {
		return fmt.Errorf("%w: gabor filler supports at most 4 axes, got %d", ErrUnsupportedRank, blob.NumAxes())
	}
	if blob.Width() != blob.Height() {
		return fmt.Errorf("%w: gabor filter must be square, got %dx%d", ErrShapeMismatch, blob.Height(), blob.Width())
	}
	if blob.Channels() != 3 {
		return fmt.Errorf("%w: gabor filler needs 3 channels, got %d", ErrShapeMismatch, blob.Channels())
	}

	gen := f.newGenerator(blob.Num(), blob.Width())
	gen.Generate()
	if gen.KernelSize() != blob.Count() {
		return fmt.Errorf("%w: generator produced %d coefficients for a blob of %d elements",
			ErrShapeMismatch, gen.KernelSize(), blob.Count())
	}

	data := blob.Data()
	for i, v := range gen.KernelData() {
		data[i] = T(v)
	}
	return nil
}

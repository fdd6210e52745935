// Package filler populates parameter blobs according to a configured
// initialization scheme.
//
// Fillers run exactly once per blob, at construction time, strictly before any
// training or inference access begins. Each Fill call either overwrites every
// element of the blob or fails before writing anything; no blob is ever left
// half-initialized.
//
// Example:
//
//	cfg := filler.NewConfig(filler.TypeXavier)
//	f, err := filler.New[float32](cfg, rng.NewTimeSource())
//	if err != nil { ... }
//	if err := f.Fill(weights); err != nil { ... }
package filler

import (
	"fmt"

	"github.com/prime-ml/prime/internal/gabor"
	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// Filler writes initial values into every element of a blob.
type Filler[T tensor.Float] interface {
	Fill(blob *tensor.Blob[T]) error
}

// New constructs the filler selected by cfg.Type. The match is exact and
// case-sensitive; an unrecognized tag yields ErrUnknownType.
func New[T tensor.Float](cfg Config, src rng.Source) (Filler[T], error) {
	switch cfg.Type {
	case TypeConstant:
		return &ConstantFiller[T]{cfg: cfg}, nil
	case TypeUniform:
		return &UniformFiller[T]{cfg: cfg, src: src}, nil
	case TypeGaussian:
		return &GaussianFiller[T]{cfg: cfg, src: src}, nil
	case TypePositiveUnitBall:
		return &PositiveUnitBallFiller[T]{cfg: cfg, src: src}, nil
	case TypeXavier:
		return &XavierFiller[T]{cfg: cfg, src: src}, nil
	case TypeMSRA:
		return &MSRAFiller[T]{cfg: cfg, src: src}, nil
	case TypeBilinear:
		return &BilinearFiller[T]{cfg: cfg}, nil
	case TypeGabor:
		return NewGaborFiller[T](cfg, defaultGenerator), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}
}

// defaultGenerator wires the in-tree Gabor bank generator.
func defaultGenerator(numFilters, spatialSize int) KernelGenerator {
	return gabor.New(numFilters, spatialSize)
}

// checkCount enforces the shared precondition that the blob has elements.
func checkCount[T tensor.Float](blob *tensor.Blob[T]) error {
	if blob == nil || blob.Count() == 0 {
		return ErrEmptyBlob
	}
	return nil
}

// checkFillable combines the element-count precondition with the rejection of
// sparsity for fillers that do not support it.
func checkFillable[T tensor.Float](blob *tensor.Blob[T], cfg Config) error {
	if err := checkCount(blob); err != nil {
		return err
	}
	if cfg.Sparse != NoSparsity {
		return fmt.Errorf("%w (sparse=%d)", ErrUnsupportedSparsity, cfg.Sparse)
	}
	return nil
}

// drawUniform samples len(dst) values from U(lo, hi) into dst.
func drawUniform[T tensor.Float](dst []T, lo, hi float64, src rng.Source) {
	buf := make([]float64, len(dst))
	src.FillUniform(buf, lo, hi)
	for i, v := range buf {
		dst[i] = T(v)
	}
}

// drawGaussian samples len(dst) values from N(mean, std) into dst.
func drawGaussian[T tensor.Float](dst []T, mean, std float64, src rng.Source) {
	buf := make([]float64, len(dst))
	src.FillGaussian(buf, mean, std)
	for i, v := range buf {
		dst[i] = T(v)
	}
}

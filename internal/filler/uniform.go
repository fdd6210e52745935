package filler

import (
	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// UniformFiller draws every element from U(Config.Min, Config.Max).
type UniformFiller[T tensor.Float] struct {
	cfg Config
	src rng.Source
}

// Fill overwrites every element with a uniform draw.
func (f *UniformFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	drawUniform(blob.Data(), f.cfg.Min, f.cfg.Max, f.src)
	return nil
}

// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package filler

import (
	"github.com/prime-ml/prime/internal/filler"
	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// Known filler type tags, matched exactly by New.
const (
	TypeConstant         = filler.TypeConstant
	TypeUniform          = filler.TypeUniform
	TypeGaussian         = filler.TypeGaussian
	TypePositiveUnitBall = filler.TypePositiveUnitBall
	TypeXavier           = filler.TypeXavier
	TypeMSRA             = filler.TypeMSRA
	TypeBilinear         = filler.TypeBilinear
	TypeGabor            = filler.TypeGabor
)

// NoSparsity is the Sparse value meaning no sparsification.
const NoSparsity = filler.NoSparsity

// Config describes how to fill one blob.
type Config = filler.Config

// NewConfig returns a Config for the given type with the standard defaults.
func NewConfig(typ string) Config {
	return filler.NewConfig(typ)
}

// VarianceNorm selects which connection count normalizes the scale of the
// variance-scaled fillers.
type VarianceNorm = filler.VarianceNorm

// Variance normalization policies.
const (
	FanIn   VarianceNorm = filler.FanIn
	FanOut  VarianceNorm = filler.FanOut
	Average VarianceNorm = filler.Average
)

// Filler writes initial values into every element of a blob.
type Filler[T tensor.Float] = filler.Filler[T]

// KernelGenerator produces a bank of fixed convolution kernels for the gabor
// filler.
type KernelGenerator = filler.KernelGenerator

// GeneratorFunc constructs a KernelGenerator for a filter bank.
type GeneratorFunc = filler.GeneratorFunc

// Precondition violations reported by Fill and New.
var (
	ErrEmptyBlob           = filler.ErrEmptyBlob
	ErrUnsupportedSparsity = filler.ErrUnsupportedSparsity
	ErrInvalidSparsity     = filler.ErrInvalidSparsity
	ErrShapeMismatch       = filler.ErrShapeMismatch
	ErrUnsupportedRank     = filler.ErrUnsupportedRank
	ErrUnknownType         = filler.ErrUnknownType
)

// New constructs the filler selected by cfg.Type.
//
// Example:
//
//	f, err := filler.New[float32](filler.NewConfig(filler.TypeMSRA), src)
func New[T tensor.Float](cfg Config, src rng.Source) (Filler[T], error) {
	return filler.New[T](cfg, src)
}

// NewGaborFiller creates a gabor filler with a custom kernel generator.
func NewGaborFiller[T tensor.Float](cfg Config, newGenerator GeneratorFunc) Filler[T] {
	return filler.NewGaborFiller[T](cfg, newGenerator)
}

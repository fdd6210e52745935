// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for parameter-level wiring between
// blobs and fillers.
package nn

import (
	"github.com/prime-ml/prime/internal/filler"
	"github.com/prime-ml/prime/internal/nn"
	"github.com/prime-ml/prime/internal/tensor"
)

// Parameter is a named, shaped blob paired with the filler configuration
// that seeds it.
type Parameter[T tensor.Float] = nn.Parameter[T]

// NewParameter allocates a zero-valued blob for the parameter.
//
// Example:
//
//	weight, err := nn.NewParameter[float32]("linear1.weight",
//		tensor.Shape{128, 784}, filler.NewConfig(filler.TypeXavier))
func NewParameter[T tensor.Float](name string, shape tensor.Shape, cfg filler.Config) (*Parameter[T], error) {
	return nn.NewParameter[T](name, shape, cfg)
}

// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rng provides the public API for the sampling capability fillers
// draw from. Sources are not safe for concurrent use; share one under
// external synchronization or create one per goroutine.
package rng

import (
	"github.com/prime-ml/prime/internal/rng"
)

// Source draws batches of samples for blob initialization.
type Source = rng.Source

// NewSource creates a Source seeded deterministically.
//
// Example:
//
//	src := rng.NewSource(42) // reproducible draws
func NewSource(seed uint64) Source {
	return rng.NewSource(seed)
}

// NewTimeSource creates a Source seeded from the clock.
func NewTimeSource() Source {
	return rng.NewTimeSource()
}

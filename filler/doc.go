// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package filler provides the public API for blob initialization in the Prime
// ML framework.
//
// # Overview
//
// Fillers populate parameter blobs once, at construction time, according to a
// configured scheme:
//   - constant, uniform, gaussian (with optional sparsification)
//   - positive_unitball (rows normalized to sum 1)
//   - xavier, msra (variance-scaled by fan-in/fan-out)
//   - bilinear (fixed upsampling kernels), gabor (oriented filter banks)
//
// # Basic Usage
//
//	import (
//	    "github.com/prime-ml/prime/filler"
//	    "github.com/prime-ml/prime/rng"
//	    "github.com/prime-ml/prime/tensor"
//	)
//
//	func main() {
//	    weights, _ := tensor.New[float32](tensor.Shape{64, 3, 7, 7})
//	    f, err := filler.New[float32](filler.NewConfig(filler.TypeXavier), rng.NewTimeSource())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := f.Fill(weights); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package filler

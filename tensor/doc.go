// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for parameter blobs in the Prime ML
// framework.
//
// # Overview
//
// A Blob is a shaped, flat-buffer-backed multidimensional container used as a
// network parameter. This package provides:
//   - Generic type-safe blobs (Blob[T])
//   - Shape bookkeeping with validation
//   - The axis conventions fillers rely on (num, channels, spatial...)
//
// # Basic Usage
//
//	import "github.com/prime-ml/prime/tensor"
//
//	func main() {
//	    weights, err := tensor.New[float32](tensor.Shape{64, 3, 7, 7})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(weights.Count()) // 9408
//	}
package tensor

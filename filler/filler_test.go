// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package filler_test

import (
	"errors"
	"testing"

	"github.com/prime-ml/prime/filler"
	"github.com/prime-ml/prime/rng"
	"github.com/prime-ml/prime/tensor"
)

// TestPublicAPI verifies the facade constructs and runs a filler end to end.
func TestPublicAPI(t *testing.T) {
	cfg := filler.NewConfig(filler.TypeConstant)
	cfg.Value = 1.5

	f, err := filler.New[float32](cfg, rng.NewSource(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	blob, err := tensor.New[float32](tensor.Shape{3, 3})
	if err != nil {
		t.Fatalf("tensor.New failed: %v", err)
	}
	if err := f.Fill(blob); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	for i, v := range blob.Data() {
		if v != 1.5 {
			t.Fatalf("element %d = %v, want 1.5", i, v)
		}
	}
}

// TestPublicErrors verifies the error sentinels are re-exported.
func TestPublicErrors(t *testing.T) {
	_, err := filler.New[float32](filler.NewConfig("bogus"), rng.NewSource(1))
	if !errors.Is(err, filler.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

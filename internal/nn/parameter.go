// Package nn holds the parameter-level wiring between blobs and fillers.
package nn

import (
	"fmt"

	"github.com/prime-ml/prime/internal/filler"
	"github.com/prime-ml/prime/internal/rng"
	"github.com/prime-ml/prime/internal/tensor"
)

// Parameter is a named, shaped blob paired with the filler configuration that
// seeds it. Layers declare their weights and biases as Parameters and run
// Init once before training or inference touches the blob.
//
// Example:
//
//	weight, err := nn.NewParameter[float32]("conv1.weight",
//		tensor.Shape{64, 3, 7, 7}, filler.NewConfig(filler.TypeXavier))
//	if err != nil { ... }
//	if err := weight.Init(rng.NewTimeSource()); err != nil { ... }
type Parameter[T tensor.Float] struct {
	name string
	blob *tensor.Blob[T]
	cfg  filler.Config
}

// NewParameter allocates a zero-valued blob for the parameter.
//
// Parameters:
//   - name: Descriptive name (e.g. "linear1.weight")
//   - shape: Blob shape
//   - cfg: Filler configuration applied by Init
func NewParameter[T tensor.Float](name string, shape tensor.Shape, cfg filler.Config) (*Parameter[T], error) {
	blob, err := tensor.New[T](shape)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}
	return &Parameter[T]{name: name, blob: blob, cfg: cfg}, nil
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Blob returns the parameter blob.
func (p *Parameter[T]) Blob() *tensor.Blob[T] {
	return p.blob
}

// Config returns the filler configuration.
func (p *Parameter[T]) Config() filler.Config {
	return p.cfg
}

// Init populates the blob through the configured filler. It is intended to be
// called exactly once, before any concurrent access to the blob begins.
func (p *Parameter[T]) Init(src rng.Source) error {
	f, err := filler.New[T](p.cfg, src)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", p.name, err)
	}
	if err := f.Fill(p.blob); err != nil {
		return fmt.Errorf("parameter %q: %w", p.name, err)
	}
	return nil
}

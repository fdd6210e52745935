package filler

import "github.com/prime-ml/prime/internal/tensor"

// ConstantFiller writes Config.Value to every element.
type ConstantFiller[T tensor.Float] struct {
	cfg Config
}

// Fill overwrites every element with the configured constant.
func (f *ConstantFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	data := blob.Data()
	value := T(f.cfg.Value)
	for i := range data {
		data[i] = value
	}
	return nil
}

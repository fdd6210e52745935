package filler

import (
	"fmt"
	"math"

	"github.com/prime-ml/prime/internal/tensor"
)

// BilinearFiller writes the coefficients of a bilinear (4-axis blobs) or
// trilinear (5-axis blobs) interpolation kernel.
//
// The common use is seeding a deconvolution layer acting as a fixed,
// non-learned upsampler: a (C, 1, K, K) blob filled bilinear, with stride
// equal to the upsampling factor and K = 2*factor - factor%2, performs
// channel-wise bilinear interpolation. Identical coefficients are written for
// every (num, channel) slice. Output is deterministic.
type BilinearFiller[T tensor.Float] struct {
	cfg Config
}

// Fill overwrites every element with interpolation coefficients.
func (f *BilinearFiller[T]) Fill(blob *tensor.Blob[T]) error {
	if err := checkFillable(blob, f.cfg); err != nil {
		return err
	}
	switch blob.NumAxes() {
	case 4:
		h, w := blob.Dim(2), blob.Dim(3)
		if h != w {
			return fmt.Errorf("%w: bilinear filter must be square, got %dx%d", ErrShapeMismatch, h, w)
		}
		fillInterpolation(blob.Data(), []int{h, w})
	case 5:
		d, h, w := blob.Dim(2), blob.Dim(3), blob.Dim(4)
		if d != h || h != w {
			return fmt.Errorf("%w: trilinear filter must be cubic, got %dx%dx%d", ErrShapeMismatch, d, h, w)
		}
		fillInterpolation(blob.Data(), []int{d, h, w})
	default:
		return fmt.Errorf("%w: bilinear filler supports 4 or 5 axes, got %d", ErrUnsupportedRank, blob.NumAxes())
	}
	return nil
}

// fillInterpolation writes the separable interpolation kernel over the
// trailing spatial axes, ordered slowest to fastest. All extents are equal;
// the coefficient at spatial position (x, y[, z]) is the product of
// 1 - |pos/f - c| over the axes, with f = ceil(k/2) and
// c = (2f - 1 - f%2) / (2f).
func fillInterpolation[T tensor.Float](data []T, extents []int) {
	k := extents[len(extents)-1]
	f := (k + 1) / 2 // ceil(k/2) for positive k
	c := float64(2*f-1-f%2) / float64(2*f)
	for i := range data {
		coeff := 1.0
		stride := 1
		for ax := len(extents) - 1; ax >= 0; ax-- {
			pos := float64((i / stride) % extents[ax])
			coeff *= 1 - math.Abs(pos/float64(f)-c)
			stride *= extents[ax]
		}
		data[i] = T(coeff)
	}
}

// Package gabor synthesizes banks of Gabor convolution kernels, used to seed
// first-layer edge detectors with fixed oriented filters.
package gabor

import "math"

// Every kernel in the bank is replicated across the three color channels.
const channels = 3

// Generator builds a bank of square Gabor kernels.
//
// The bank contains one kernel per filter, orientation stepped evenly over
// [0, pi). Output depends only on the constructor arguments, so repeated
// Generate calls reproduce identical coefficients.
type Generator struct {
	numFilters  int
	spatialSize int
	kernel      []float64
}

// New creates a generator for numFilters kernels of spatialSize x spatialSize.
func New(numFilters, spatialSize int) *Generator {
	return &Generator{
		numFilters:  numFilters,
		spatialSize: spatialSize,
		kernel:      make([]float64, numFilters*channels*spatialSize*spatialSize),
	}
}

// Generate computes the kernel coefficients.
func (g *Generator) Generate() {
	size := g.spatialSize
	half := float64(size-1) / 2

	// Standard Gabor parameterization: a Gaussian envelope over a cosine
	// carrier, sigma tied to the wavelength, mild eccentricity.
	lambda := float64(size) / 2
	sigma := 0.56 * lambda
	gamma := 0.5

	area := size * size
	for n := 0; n < g.numFilters; n++ {
		theta := math.Pi * float64(n) / float64(g.numFilters)
		sin, cos := math.Sincos(theta)
		base := n * channels * area
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				xc := float64(x) - half
				yc := float64(y) - half
				xr := xc*cos + yc*sin
				yr := -xc*sin + yc*cos
				env := math.Exp(-(xr*xr + gamma*gamma*yr*yr) / (2 * sigma * sigma))
				v := env * math.Cos(2*math.Pi*xr/lambda)
				for ch := 0; ch < channels; ch++ {
					g.kernel[base+ch*area+y*size+x] = v
				}
			}
		}
	}
}

// KernelData returns the flat coefficient buffer, laid out
// (filter, channel, y, x) row-major.
func (g *Generator) KernelData() []float64 {
	return g.kernel
}

// KernelSize returns the number of coefficients in the bank.
func (g *Generator) KernelSize() int {
	return len(g.kernel)
}

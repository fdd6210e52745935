// Package rng provides the sampling capability blob fillers draw from.
//
// The Source interface is the injection point for randomness: production code
// uses a clock-seeded source, tests substitute a fixed seed so every draw is
// reproducible. A Source is not safe for concurrent use; share one under
// external synchronization or create one per goroutine.
package rng

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws batches of samples for blob initialization.
// Each method writes exactly len(dst) entries.
type Source interface {
	// FillUniform samples from U(lo, hi).
	FillUniform(dst []float64, lo, hi float64)
	// FillGaussian samples from N(mean, std).
	FillGaussian(dst []float64, mean, std float64)
	// FillBernoulli samples 0/1 values with P(1) = p.
	FillBernoulli(dst []int, p float64)
}

// distSource implements Source on top of gonum's univariate distributions.
type distSource struct {
	src rand.Source
}

// NewSource creates a Source seeded deterministically.
func NewSource(seed uint64) Source {
	return &distSource{src: rand.NewSource(seed)}
}

// NewTimeSource creates a Source seeded from the clock.
func NewTimeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

func (s *distSource) FillUniform(dst []float64, lo, hi float64) {
	d := distuv.Uniform{Min: lo, Max: hi, Src: s.src}
	for i := range dst {
		dst[i] = d.Rand()
	}
}

func (s *distSource) FillGaussian(dst []float64, mean, std float64) {
	d := distuv.Normal{Mu: mean, Sigma: std, Src: s.src}
	for i := range dst {
		dst[i] = d.Rand()
	}
}

func (s *distSource) FillBernoulli(dst []int, p float64) {
	d := distuv.Bernoulli{P: p, Src: s.src}
	for i := range dst {
		dst[i] = int(d.Rand())
	}
}

package gabor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGeneratorSize verifies the bank size law: numFilters * 3 channels *
// spatialSize^2 coefficients.
func TestGeneratorSize(t *testing.T) {
	g := New(64, 7)
	assert.Equal(t, 64*3*7*7, g.KernelSize())
	assert.Len(t, g.KernelData(), g.KernelSize())
}

// TestGeneratorDeterministic verifies repeated generation reproduces
// identical coefficients.
func TestGeneratorDeterministic(t *testing.T) {
	a := New(8, 5)
	a.Generate()
	first := make([]float64, a.KernelSize())
	copy(first, a.KernelData())

	a.Generate()
	assert.Equal(t, first, a.KernelData())

	b := New(8, 5)
	b.Generate()
	assert.Equal(t, first, b.KernelData())
}

// TestGeneratorBounded verifies coefficients stay within the unit envelope.
func TestGeneratorBounded(t *testing.T) {
	g := New(16, 9)
	g.Generate()
	for i, v := range g.KernelData() {
		if math.Abs(v) > 1 {
			t.Fatalf("coefficient %d = %v, want |v| <= 1", i, v)
		}
	}
}

// TestGeneratorChannelsIdentical verifies each kernel is replicated across
// the three channels.
func TestGeneratorChannelsIdentical(t *testing.T) {
	g := New(4, 5)
	g.Generate()
	data := g.KernelData()
	area := 5 * 5
	for n := 0; n < 4; n++ {
		base := n * 3 * area
		for i := 0; i < area; i++ {
			if data[base+i] != data[base+area+i] || data[base+i] != data[base+2*area+i] {
				t.Fatalf("filter %d differs across channels at offset %d", n, i)
			}
		}
	}
}

// TestGeneratorOrientationsDiffer verifies filters in the bank are not all
// the same kernel.
func TestGeneratorOrientationsDiffer(t *testing.T) {
	g := New(4, 7)
	g.Generate()
	data := g.KernelData()
	area := 7 * 7
	first := data[:area]
	second := data[3*area : 3*area+area]
	assert.NotEqual(t, first, second)
}

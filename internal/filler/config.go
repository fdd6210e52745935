package filler

// Known filler type tags, matched exactly by the factory.
const (
	TypeConstant         = "constant"
	TypeUniform          = "uniform"
	TypeGaussian         = "gaussian"
	TypePositiveUnitBall = "positive_unitball"
	TypeXavier           = "xavier"
	TypeMSRA             = "msra"
	TypeBilinear         = "bilinear"
	TypeGabor            = "gabor"
)

// NoSparsity is the Sparse value meaning no sparsification. It is the default
// for every filler; only the Gaussian filler accepts anything else.
const NoSparsity = -1

// VarianceNorm selects which connection count normalizes the scale of the
// variance-scaled fillers (xavier, msra).
type VarianceNorm int

// Variance normalization policies.
const (
	// FanIn normalizes by the number of incoming connections (the default).
	FanIn VarianceNorm = iota
	// FanOut normalizes by the number of outgoing connections.
	FanOut
	// Average normalizes by the mean of fan-in and fan-out.
	Average
)

// String returns a human-readable policy name.
func (v VarianceNorm) String() string {
	switch v {
	case FanIn:
		return "fan_in"
	case FanOut:
		return "fan_out"
	case Average:
		return "average"
	default:
		return "unknown"
	}
}

// Config describes how to fill one blob. It is a read-only value: fillers
// never mutate it, and a single Config may initialize any number of blobs.
//
// Fields are only meaningful to the filler types that document them; the rest
// are ignored.
type Config struct {
	// Type selects the filler variant.
	Type string

	// Value is the constant written by the constant filler.
	Value float64

	// Min and Max bound the uniform filler's draws.
	Min float64
	Max float64

	// Mean and Std parameterize the gaussian filler.
	Mean float64
	Std  float64

	// Sparse is NoSparsity, or, for the gaussian filler, the target mean
	// count of non-zero entries per output row.
	Sparse int

	// VarianceNorm controls how xavier and msra derive their normalizing
	// connection count.
	VarianceNorm VarianceNorm

	// Scale multiplies the msra filler's derived standard deviation.
	Scale float64
}

// NewConfig returns a Config for the given type with the standard defaults:
// value 0, bounds [0, 1), mean 0, std 1, no sparsity, fan-in normalization,
// scale 1.
func NewConfig(typ string) Config {
	return Config{
		Type:   typ,
		Max:    1,
		Std:    1,
		Sparse: NoSparsity,
		Scale:  1,
	}
}

package filler

import "errors"

// Filler preconditions are configuration or programming bugs, not runtime
// conditions; none of these errors is retryable. Every failure is detected
// before the target blob is written, so a failed Fill leaves the blob
// untouched.
var (
	// ErrEmptyBlob reports a blob with no elements.
	ErrEmptyBlob = errors.New("filler: blob has no elements")

	// ErrUnsupportedSparsity reports a sparse setting passed to a filler
	// that does not support sparsification.
	ErrUnsupportedSparsity = errors.New("filler: sparsity not supported by this filler")

	// ErrInvalidSparsity reports a sparse value below -1.
	ErrInvalidSparsity = errors.New("filler: sparse must be >= -1")

	// ErrShapeMismatch reports a blob shape the filler cannot handle.
	ErrShapeMismatch = errors.New("filler: blob shape mismatch")

	// ErrUnsupportedRank reports an axis count outside the filler's
	// supported set.
	ErrUnsupportedRank = errors.New("filler: unsupported number of axes")

	// ErrUnknownType reports an unrecognized filler type tag.
	ErrUnknownType = errors.New("filler: unknown filler type")
)

package zx0

import "math"

// Unlimited is the MaxOutputSize used by DefaultOptions.
const Unlimited = math.MaxInt

// Options configures Decompress behavior.
type Options struct {
	// ClassicMode decodes the classic (v1) format, where the high part of
	// new offsets is stored without bit inversion.
	ClassicMode bool
	// MaxOutputSize caps the decompressed size. Decoding stops quietly once
	// the cap is reached; it is meant to bound work on untrusted input.
	// Zero means Unlimited; negative values are rejected.
	MaxOutputSize int
}

// DefaultOptions returns options for the current format with no output limit.
func DefaultOptions() *Options {
	return &Options{
		ClassicMode:   false,
		MaxOutputSize: Unlimited,
	}
}

// ClassicOptions returns options for the classic (v1) format with no output limit.
func ClassicOptions() *Options {
	return &Options{
		ClassicMode:   true,
		MaxOutputSize: Unlimited,
	}
}

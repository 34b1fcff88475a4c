package advanced

import (
	"io"
	"os"
)

// Options carries the per-call knobs. The zero value plus DefaultThreshold is
// the default behavior: no domain validation, no diagnostics.
type Options struct {
	// Validate rejects any input longitude outside [-180, 180] with
	// ErrInvalidInput instead of trusting the caller.
	Validate bool

	// Verbose emits a diagnostic notice when the footprint pass decides to
	// wrap fragments eastward.
	Verbose bool

	// Threshold is the longitude delta, in degrees, beyond which two
	// consecutive vertices are taken to cross the antimeridian. NewOptions
	// sets it to DefaultThreshold.
	Threshold float64

	// Diagnostics is where verbose notices go. Nil means os.Stderr.
	Diagnostics io.Writer
}

// Option mutates an Options value. Constructors for the common ones live in
// the root package next to the public entry points.
type Option func(*Options)

func NewOptions(opts ...Option) *Options {
	o := &Options{Threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Options) diagnostics() io.Writer {
	if o.Diagnostics != nil {
		return o.Diagnostics
	}
	return os.Stderr
}

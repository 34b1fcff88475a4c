package advanced

import "github.com/pkg/errors"

// Threading errors up through every stage of the split pipeline would add a
// ton of noise for failures that are all terminal anyway. Instead, stages
// panic with a classified error, and the public API recovers to convert to an
// error return.

type SplitError error

// The three ways a split can fail. Every thrown error wraps one of these, so
// callers can test with errors.Is after recovery.
var (
	// ErrInvalidInput marks longitudes outside [-180, 180] under strict
	// validation, and geometry kinds the dispatcher cannot route.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedTopology marks polygons that would need to be cut on both
	// antimeridian images at once. The split primitive takes a single cutting
	// line, so these are rejected rather than approximated.
	ErrUnsupportedTopology = errors.New("unsupported topology")

	// ErrGeometry marks geometry the split primitive rejected, typically a
	// degenerate fragment induced by unwrapping a malformed ring.
	ErrGeometry = errors.New("geometry rejected")
)

// Panic with a SplitError wrapping the given class.
func throwf(class error, format string, args ...interface{}) {
	panic(SplitError(errors.Wrapf(class, format, args...)))
}

// Re-panic with an error that was already recovered once, e.g. on its way out
// of a worker goroutine. The classification wrap is preserved.
func rethrow(err error) {
	panic(SplitError(err))
}

func HandleSplitPanicRecover(r interface{}) error {
	if r != nil {
		if splitError, ok := r.(SplitError); ok {
			return splitError
		}
		panic(r)
	}
	return nil
}

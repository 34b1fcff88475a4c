// Antimeridian safe polygon splitting for Go.
//
// This package takes polygons and multipolygons whose edges cross the 180th
// meridian and splits them into constituent polygons on either side of it,
// following the GeoJSON recommendation for such geometries (RFC 7946, section
// 3.1.9). A greedy footprint pass then rewraps the fragments so the result's
// longitudinal bounding box is as narrow as the geometry allows.
package antimeridian

import (
	"io"

	"github.com/paulmach/orb"

	"github.com/oyashio/antimeridian/advanced"
)

// Error classes for everything a call can reject. Returned errors wrap one of
// these, so check with errors.Is.
var (
	// ErrInvalidInput covers longitudes outside [-180, 180] under Validate
	// and geometry types the splitter cannot handle.
	ErrInvalidInput = advanced.ErrInvalidInput
	// ErrUnsupportedTopology covers polygons that would have to be split on
	// both antimeridian images at once.
	ErrUnsupportedTopology = advanced.ErrUnsupportedTopology
	// ErrGeometry covers geometry the split primitive rejects, typically a
	// shell that collapses while being cut.
	ErrGeometry = advanced.ErrGeometry
)

// DefaultThreshold is the difference in consecutive longitudes, in degrees,
// above which an edge is taken to cross the antimeridian.
const DefaultThreshold = advanced.DefaultThreshold

// Option adjusts a single call.
type Option = advanced.Option

// Validate makes the call fail with ErrInvalidInput when an input longitude
// falls outside [-180, 180] degrees. Off by default, matching the usual case
// of trusted upstream data.
func Validate() Option {
	return func(o *advanced.Options) { o.Validate = true }
}

// Verbose emits a diagnostic notice when the footprint pass decides to rewrap.
func Verbose() Option {
	return func(o *advanced.Options) { o.Verbose = true }
}

// Threshold overrides the crossing threshold of DefaultThreshold degrees.
func Threshold(deg float64) Option {
	return func(o *advanced.Options) { o.Threshold = deg }
}

// DiagnosticsTo redirects Verbose notices, which otherwise go to stderr.
func DiagnosticsTo(w io.Writer) Option {
	return func(o *advanced.Options) { o.Diagnostics = w }
}

// Split normalizes a Polygon or MultiPolygon into an antimeridian safe
// MultiPolygon: members that cross the meridian are split at it, fragments
// are rewrapped into [-180, 180], and the footprint pass shrinks the
// longitudinal bounding box when rewrapping helps. Any other geometry type
// fails with ErrInvalidInput.
func Split(g orb.Geometry, opts ...Option) (result orb.MultiPolygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Split(g, advanced.NewOptions(opts...)), nil
}

// SplitPolygon splits a single polygon at the antimeridian. Unlike Split it
// skips the footprint pass, so fragments keep the hemisphere the split put
// them in. A polygon that never crosses comes back as a singleton with its
// original coordinates.
func SplitPolygon(p orb.Polygon, opts ...Option) (result orb.MultiPolygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.SplitPolygon(p, advanced.NewOptions(opts...)), nil
}

// SplitMultiPolygon splits every member of mp at the antimeridian and
// concatenates the fragments in input order, without the footprint pass. The
// first member that fails, in input order, fails the whole call.
func SplitMultiPolygon(mp orb.MultiPolygon, opts ...Option) (result orb.MultiPolygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.SplitMultiPolygon(mp, advanced.NewOptions(opts...)), nil
}

// ReduceFootprint applies only the footprint pass: if shifting every fragment
// with a negative minimum longitude east by 360 degrees narrows the
// collection's longitudinal bounding box, the shifted collection is returned,
// otherwise mp comes back unchanged.
func ReduceFootprint(mp orb.MultiPolygon, opts ...Option) (result orb.MultiPolygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.WrapFootprint(mp, advanced.NewOptions(opts...)), nil
}

// CheckCrossing reports whether the edge between two consecutive longitudes
// crosses the antimeridian, assuming minimum travel between them. With
// Validate, longitudes outside [-180, 180] fail with ErrInvalidInput.
func CheckCrossing(lon1, lon2 float64, opts ...Option) (crossed bool, err error) {
	defer func() {
		recoveredErr := advanced.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			crossed = false
			err = recoveredErr
		}
	}()
	return advanced.CheckCrossing(lon1, lon2, advanced.NewOptions(opts...)), nil
}

package advanced

import (
	"fmt"

	"github.com/paulmach/orb"
)

// WrapFootprint tries the one re-wrap candidate worth having: every fragment
// whose own minimum longitude is negative gets shifted east by a full
// revolution, the rest stay put. The candidate replaces the input only when it
// narrows the collection's longitudinal bounding box. A collection split at
// the antimeridian typically goes from a near 360 degree footprint to the few
// degrees the geometry actually covers.
//
// This is a single greedy probe, not a search over per fragment combinations.
func WrapFootprint(mp orb.MultiPolygon, o *Options) orb.MultiPolygon {
	bound := mp.Bound()
	if bound.IsEmpty() {
		return mp
	}
	width := bound.Right() - bound.Left()

	candidate := make(orb.MultiPolygon, len(mp))
	for i, frag := range mp {
		if frag.Bound().Left() < 0 {
			candidate[i] = xShiftPolygon(frag, 360)
		} else {
			candidate[i] = frag
		}
	}

	shifted := candidate.Bound()
	if shifted.Right()-shifted.Left() < width {
		if o.Verbose {
			fmt.Fprintln(o.diagnostics(), "antimeridian: wrapped fragments east to narrow the footprint")
		}
		return candidate
	}
	return mp
}

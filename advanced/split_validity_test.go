package advanced

// This contains no actual tests. It is just a helper for checking that a
// split result is well formed.

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertValidSplit checks the invariants every successful split has to honor:
// 1. At least one fragment comes back.
// 2. Every fragment ring is explicitly closed.
// 3. Every fragment longitude is within [-180, 180].
// 4. The fragments' total planar area equals the area of the input polygon in
//    its unwrapped (continuous longitude) form.
//
// The area baseline is computed from the unwrapped form because the raw
// coordinates of a crossing polygon trace a shape the planar area of which has
// nothing to do with the geometry the polygon means.
func AssertValidSplit(t *testing.T, in orb.Polygon, fragments orb.MultiPolygon) {
	t.Helper()
	require.NotEmpty(t, fragments)

	for _, frag := range fragments {
		for _, ring := range frag {
			require.True(t, ring.Closed(), "fragment ring is not closed: %v", ring)
		}
	}
	assertWithinRange(t, fragments)

	o := NewOptions()
	shell := unwrapRing(in[0], o)
	unwrapped := orb.Polygon{shell.ring}
	for _, hole := range in[1:] {
		unwrapped = append(unwrapped, alignHole(shell, unwrapRing(hole, o)).ring)
	}
	assert.InDelta(t, planar.Area(unwrapped), planar.Area(fragments), 1e-9,
		"fragments must cover the same area as the input")
}

// assertWithinRange checks that every vertex longitude is a valid coordinate.
func assertWithinRange(t *testing.T, mp orb.MultiPolygon) {
	t.Helper()
	for _, frag := range mp {
		for _, ring := range frag {
			for _, point := range ring {
				require.GreaterOrEqual(t, point.Lon(), -180.0)
				require.LessOrEqual(t, point.Lon(), 180.0)
			}
		}
	}
}

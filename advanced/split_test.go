package advanced

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPolygon_PlainSquare(t *testing.T) {
	in := PlainSquare()
	got := SplitPolygon(in, NewOptions())

	require.Len(t, got, 1)
	assert.Equal(t, in, got[0])
	AssertValidSplit(t, in, got)
}

func TestSplitPolygon_SeamBox(t *testing.T) {
	in := SeamBox()
	got := SplitPolygon(in, NewOptions())

	require.Len(t, got, 2)
	AssertValidSplit(t, in, got)

	west, east := got[0].Bound(), got[1].Bound()
	assert.InDelta(t, 179, west.Left(), 1e-9)
	assert.InDelta(t, 180, west.Right(), 1e-9)
	assert.InDelta(t, -180, east.Left(), 1e-9)
	assert.InDelta(t, -179, east.Right(), 1e-9)

	assert.InDelta(t, 1, planar.Area(got[0]), 1e-9)
	assert.InDelta(t, 1, planar.Area(got[1]), 1e-9)
}

func TestSplitPolygon_ReefWithLagoon(t *testing.T) {
	in := ReefWithLagoon()
	got := SplitPolygon(in, NewOptions())

	require.Len(t, got, 2)
	AssertValidSplit(t, in, got)

	// The hole crosses too, so each side must carry its part of it.
	require.Len(t, got[0], 2)
	require.Len(t, got[1], 2)
	assert.InDelta(t, 9, planar.Area(got[0]), 1e-9)
	assert.InDelta(t, 9, planar.Area(got[1]), 1e-9)

	west, east := got[0].Bound(), got[1].Bound()
	assert.InDelta(t, 178, west.Left(), 1e-9)
	assert.InDelta(t, 180, west.Right(), 1e-9)
	assert.InDelta(t, -180, east.Left(), 1e-9)
	assert.InDelta(t, -178, east.Right(), 1e-9)
}

func TestSplitPolygon_BothHemispheres(t *testing.T) {
	err := capture(func() {
		SplitPolygon(BothHemispheres(), NewOptions())
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTopology))
}

func TestSplitPolygon_TouchesMeridian(t *testing.T) {
	// The hop from 179 to -180 counts as a crossing, but the unwrapped track
	// peaks at exactly 180 and never overhangs. Nothing to split.
	in := orb.Polygon{
		{{179, 0}, {-180, 0}, {-180, 1}, {179, 1}, {179, 0}},
	}
	got := SplitPolygon(in, NewOptions())

	require.Len(t, got, 1)
	assert.Equal(t, in, got[0])
}

func TestSplitPolygonOutOfRange(t *testing.T) {
	in := orb.Polygon{
		{{200, 0}, {201, 0}, {201, 1}, {200, 1}, {200, 0}},
	}

	t.Run("without validate the result is normalized", func(t *testing.T) {
		// No hop crosses, so there is no split. The rewrap still runs and
		// brings the raw out of range coordinates into [-180, 180].
		got := SplitPolygon(in, NewOptions())
		require.Len(t, got, 1)
		expected := orb.Polygon{
			{{-160, 0}, {-159, 0}, {-159, 1}, {-160, 1}, {-160, 0}},
		}
		assert.Equal(t, expected, got[0])
	})

	t.Run("with validate it is rejected", func(t *testing.T) {
		err := capture(func() {
			SplitPolygon(in, &Options{Validate: true, Threshold: DefaultThreshold})
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestSplitPolygonEmpty(t *testing.T) {
	t.Run("no rings", func(t *testing.T) {
		got := SplitPolygon(orb.Polygon{}, NewOptions())
		require.Len(t, got, 1)
		assert.Empty(t, got[0])
	})

	t.Run("empty shell ring", func(t *testing.T) {
		got := SplitPolygon(orb.Polygon{orb.Ring{}}, NewOptions())
		require.Len(t, got, 1)
		require.Len(t, got[0], 1)
		assert.Empty(t, got[0][0])
	})
}

func TestSplitPolygonDegenerateShell(t *testing.T) {
	// An empty shell with a crossing hole still elects a meridian, but
	// clipping the empty shell leaves nothing on either side of the cut.
	in := orb.Polygon{{}, SeamBox()[0]}
	err := capture(func() {
		SplitPolygon(in, NewOptions())
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeometry))
}

func TestRewrapFragments(t *testing.T) {
	fragments := orb.MultiPolygon{
		{{{181, 0}, {182, 0}, {182, 1}, {181, 1}, {181, 0}}},
		{{{-190, 0}, {-185, 0}, {-185, 1}, {-190, 1}, {-190, 0}}},
		{{{10, 0}, {20, 0}, {20, 1}, {10, 1}, {10, 0}}},
	}
	got := rewrapFragments(fragments)

	require.Len(t, got, 3)
	assert.Equal(t, orb.Polygon{{{-179, 0}, {-178, 0}, {-178, 1}, {-179, 1}, {-179, 0}}}, got[0])
	assert.Equal(t, orb.Polygon{{{170, 0}, {175, 0}, {175, 1}, {170, 1}, {170, 0}}}, got[1])
	assert.Equal(t, fragments[2], got[2])
}

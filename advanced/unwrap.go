package advanced

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Unwrapping removes the ±180 discontinuity from a ring by walking its
// vertices and, whenever a hop is wider than the threshold, shifting the new
// vertex a full revolution toward the previous one. The result is a
// continuous track whose longitudes may temporarily leave [-180, 180]; that
// working form never survives past the fragment rewrap.

// ringSpan is one ring in continuous longitude space, together with the
// running facts the later stages need: its longitudinal bounds and how many
// times it hopped the antimeridian.
type ringSpan struct {
	ring      orb.Ring
	minLon    float64
	maxLon    float64
	crossings int
}

// unwrapRing returns the continuous-space copy of r. The input ring is never
// modified. An empty ring unwraps to an empty span.
func unwrapRing(r orb.Ring, o *Options) ringSpan {
	track := r.Clone()
	if len(track) == 0 {
		return ringSpan{ring: track}
	}

	if o.Validate {
		// Validation applies to the caller's longitudes only. Once vertices
		// have been shifted into continuous space they routinely and
		// legitimately exceed 180, so the crossing checks below must not
		// re-validate against the working values.
		for _, p := range r {
			checkLonDomain(p.Lon())
		}
	}

	s := ringSpan{ring: track, minLon: track[0].Lon(), maxLon: track[0].Lon()}
	for i := 1; i < len(track); i++ {
		lon := track[i].Lon()
		prev := track[i-1].Lon() // already in continuous space
		if crosses(lon, prev, o.Threshold) {
			lon -= math.Copysign(360, lon-prev)
			s.crossings++
		}
		track[i] = orb.Point{lon, track[i].Lat()}
		if lon < s.minLon {
			s.minLon = lon
		}
		if lon > s.maxLon {
			s.maxLon = lon
		}
	}
	return s
}

// alignHole re-nests an unwrapped hole into its shell's longitude frame. A
// hole that unwrapped to the far side of the discontinuity from its shell
// lands a full revolution away; one revolution back restores containment.
func alignHole(shell, hole ringSpan) ringSpan {
	if hole.minLon < shell.minLon && hole.maxLon > shell.maxLon {
		// Cannot happen for rings that came out of unwrapRing: a hole
		// spanning beyond both shell bounds would have to be wider than its
		// shell. If we are here the pipeline itself is broken.
		panic("antimeridian: hole bounds exceed shell bounds on both sides")
	}
	switch {
	case hole.minLon < shell.minLon:
		return hole.translate(360)
	case hole.maxLon > shell.maxLon:
		return hole.translate(-360)
	}
	return hole
}

func (s ringSpan) translate(offset float64) ringSpan {
	return ringSpan{
		ring:      project.Ring(s.ring.Clone(), xShift(offset)),
		minLon:    s.minLon + offset,
		maxLon:    s.maxLon + offset,
		crossings: s.crossings,
	}
}

// marks reports which antimeridian images this ring forces a cut on. Rings
// that never cross contribute nothing, no matter where their bounds sit.
func (s ringSpan) marks() Meridian {
	if s.crossings == 0 {
		return MeridianNone
	}
	m := MeridianNone
	if s.minLon < -180 {
		m |= MeridianWest
	}
	if s.maxLon > 180 {
		m |= MeridianEast
	}
	return m
}

// xShift is a projection that slides a point along the parallel by the given
// number of degrees. Composed with project's helpers it gives the affine
// horizontal translation the pipeline needs; latitude is untouched.
func xShift(offset float64) orb.Projection {
	return func(p orb.Point) orb.Point {
		return orb.Point{p[0] + offset, p[1]}
	}
}

// xShiftPolygon translates a whole polygon without touching the original.
// project mutates in place, hence the clone.
func xShiftPolygon(p orb.Polygon, offset float64) orb.Polygon {
	return project.Polygon(p.Clone(), xShift(offset))
}

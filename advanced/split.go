package advanced

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
)

// SplitPolygon cuts p into antimeridian safe pieces. Rings are unwrapped into
// continuous longitude space, holes are re-nested into the shell's frame, and
// if any ring crossed the discontinuity the polygon is split along the elected
// meridian image. Fragments come back rewrapped into [-180, 180]. A polygon
// that never crosses passes through as a singleton with its original
// coordinates.
//
// The input polygon is never modified.
func SplitPolygon(p orb.Polygon, o *Options) orb.MultiPolygon {
	if len(p) == 0 {
		return orb.MultiPolygon{p.Clone()}
	}

	shell := unwrapRing(p[0], o)
	spans := make([]ringSpan, 0, len(p))
	spans = append(spans, shell)
	marks := shell.marks()
	for _, hole := range p[1:] {
		h := alignHole(shell, unwrapRing(hole, o))
		spans = append(spans, h)
		marks |= h.marks()
	}

	var fragments orb.MultiPolygon
	if marks == MeridianNone {
		fragments = orb.MultiPolygon{p.Clone()}
	} else {
		track := make(orb.Polygon, len(spans))
		for i, s := range spans {
			track[i] = s.ring
		}
		fragments = splitAtLine(track, marks.cutLon())
	}
	return rewrapFragments(fragments)
}

// splitAtLine performs the boolean split of a continuous-space polygon along
// the meridian at lon. There is no split-by-line call in the clip package, but
// the unwrapped track is confined to (lon-360, lon+360), so clipping to the
// two full-height windows meeting at lon separates exactly the two sides of
// the line.
func splitAtLine(track orb.Polygon, lon float64) orb.MultiPolygon {
	windows := [2]orb.Bound{
		{Min: orb.Point{lon - 360, -90}, Max: orb.Point{lon, 90}},
		{Min: orb.Point{lon, -90}, Max: orb.Point{lon + 360, 90}},
	}

	var fragments orb.MultiPolygon
	for _, window := range windows {
		// clip writes into its input, and both windows need the intact track.
		piece := clip.Polygon(window, track.Clone())
		if len(piece) == 0 {
			continue
		}
		closeRings(piece)
		fragments = append(fragments, checkFragment(piece))
	}
	if len(fragments) == 0 {
		throwf(ErrGeometry, "clipping along meridian %v left no fragments; the polygon is degenerate", lon)
	}
	return fragments
}

// closeRings restores the explicit closing vertex that clipping can drop.
func closeRings(p orb.Polygon) {
	for i, r := range p {
		if len(r) == 0 || r[0] == r[len(r)-1] {
			continue
		}
		p[i] = append(r, r[0])
	}
}

// checkFragment rejects fragments whose shell collapsed below the four vertex
// ring minimum. Collapsed holes are dropped instead; losing a zero area hole
// does not change the fragment.
func checkFragment(frag orb.Polygon) orb.Polygon {
	if len(frag[0]) < 4 {
		throwf(ErrGeometry, "splitting collapsed a shell to %d points; at least 4 are needed to close a ring", len(frag[0]))
	}
	kept := orb.Polygon{frag[0]}
	for _, hole := range frag[1:] {
		if len(hole) >= 4 {
			kept = append(kept, hole)
		}
	}
	return kept
}

// rewrapFragments maps every fragment that splitting left outside [-180, 180]
// back into range with a whole revolution shift. Fragment order is preserved.
func rewrapFragments(fragments orb.MultiPolygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, len(fragments))
	for i, frag := range fragments {
		b := frag.Bound()
		switch {
		case b.Left() < -180:
			out[i] = xShiftPolygon(frag, 360)
		case b.Right() > 180:
			out[i] = xShiftPolygon(frag, -360)
		default:
			out[i] = frag
		}
	}
	return out
}

package advanced

import "github.com/paulmach/orb"

// Split routes g through the pipeline for its concrete type and always
// finishes with the footprint pass. Geometries that are not polygonal cannot
// be split at the antimeridian, and handing one over is rejected loudly
// rather than answered with an empty result.
func Split(g orb.Geometry, o *Options) orb.MultiPolygon {
	var fragments orb.MultiPolygon
	switch t := g.(type) {
	case orb.Polygon:
		fragments = SplitPolygon(t, o)
	case orb.MultiPolygon:
		fragments = SplitMultiPolygon(t, o)
	case nil:
		throwf(ErrInvalidInput, "cannot split a nil geometry")
	default:
		throwf(ErrInvalidInput, "unsupported geometry type %s; only Polygon and MultiPolygon can be split", g.GeoJSONType())
	}
	return WrapFootprint(fragments, o)
}

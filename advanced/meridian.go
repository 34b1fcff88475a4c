package advanced

import "github.com/paulmach/orb"

// In continuous longitude space the antimeridian has two images: one at -180
// for tracks that unwrapped westward and one at +180 for tracks that
// unwrapped eastward. A polygon elects the images its rings actually
// crossed; a well formed crossing polygon elects exactly one.

// Meridian is the set of antimeridian images a polygon's rings mark.
type Meridian uint8

const (
	MeridianNone Meridian = 0
	MeridianWest Meridian = 1 << 0
	MeridianEast Meridian = 1 << 1
	MeridianBoth          = MeridianWest | MeridianEast
)

func (m Meridian) String() string {
	switch m {
	case MeridianNone:
		return "none"
	case MeridianWest:
		return "west"
	case MeridianEast:
		return "east"
	case MeridianBoth:
		return "both"
	}
	return "invalid"
}

// cutLon maps the elected image to the longitude the split runs along.
// Electing both images means the polygon wraps far enough to need two cuts,
// and the split primitive takes a single cutting line.
func (m Meridian) cutLon() float64 {
	switch m {
	case MeridianWest:
		return -180
	case MeridianEast:
		return 180
	case MeridianBoth:
		throwf(ErrUnsupportedTopology, "polygon crosses the antimeridian toward both hemispheres; cannot split on two meridians at once")
	}
	panic("no meridian elected, nothing to cut on")
}

// cutLine is the full-height meridian segment at the elected image, mostly
// useful to the debug renderer.
func (m Meridian) cutLine() orb.LineString {
	lon := m.cutLon()
	return orb.LineString{{lon, -90}, {lon, 90}}
}

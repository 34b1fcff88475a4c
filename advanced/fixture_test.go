package advanced

import (
	"embed"
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// This file loads the GeoJSON fixtures and provides a few ad hoc shapes used
// across the tests. Fixtures are available by name in the fixtures/
// directory, sans extension. If anything goes wrong loading one, it panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) orb.Geometry {
	raw, err := fixtures.ReadFile("fixtures/" + name + ".geojson")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		log.Fatalf("Could not parse fixture %q: %v", name, err)
	}
	return geometry.Geometry()
}

// Some ad hoc code specified shapes

// SeamBox is the canonical crossing shape: a 2 by 1 degree box straddling the
// antimeridian at the equator, one degree into each hemisphere.
func SeamBox() orb.Polygon {
	return orb.Polygon{
		{{179, 0}, {-179, 0}, {-179, 1}, {179, 1}, {179, 0}},
	}
}

// PlainSquare sits entirely inside one hemisphere and must never split.
func PlainSquare() orb.Polygon {
	return orb.Polygon{
		{{10, 10}, {20, 10}, {20, 20}, {10, 20}, {10, 10}},
	}
}

// ReefWithLagoon is a crossing shell with a crossing hole inside it. Both
// rings hop the antimeridian twice.
func ReefWithLagoon() orb.Polygon {
	return orb.Polygon{
		{{178, -2}, {-178, -2}, {-178, 3}, {178, 3}, {178, -2}},
		{{179, 0}, {-179, 0}, {-179, 1}, {179, 1}, {179, 0}},
	}
}

// BothHemispheres winds far enough around the globe that its unwrapped track
// pokes past both images of the antimeridian. No single cut separates it.
func BothHemispheres() orb.Polygon {
	return orb.Polygon{
		{{150, 0}, {-150, 10}, {40, 20}, {-90, 30}, {170, 10}, {150, 0}},
	}
}

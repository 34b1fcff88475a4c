package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb/geojson"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/oyashio/antimeridian"
)

// Demo of antimeridian splitting over GeoJSON. Input on stdin (or from the
// file argument) should be a single GeoJSON Feature, Polygon, or MultiPolygon.
// The split result is written to stdout as GeoJSON, wrapped back into a
// Feature when the input was one.

var (
	validate  = kingpin.Flag("validate", "Reject longitudes outside [-180, 180].").Bool()
	verbose   = kingpin.Flag("verbose", "Report when the footprint pass rewraps the result.").Bool()
	threshold = kingpin.Flag("threshold", "Longitude delta in degrees treated as a crossing.").Default("180").Float64()
	path      = kingpin.Arg("file", "GeoJSON file to read instead of stdin.").ExistingFile()
)

func main() {
	kingpin.Parse()

	raw, err := readInput(*path)
	if err != nil {
		kingpin.Fatalf("reading input: %v", err)
	}

	opts := []antimeridian.Option{antimeridian.Threshold(*threshold)}
	if *validate {
		opts = append(opts, antimeridian.Validate())
	}
	if *verbose {
		opts = append(opts, antimeridian.Verbose())
	}

	out, err := splitDocument(raw, opts)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// splitDocument handles the two top-level shapes GeoJSON allows for a single
// geometry: a bare geometry object, or a Feature carrying one.
func splitDocument(raw []byte, opts []antimeridian.Option) ([]byte, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parsing geojson: %w", err)
	}

	if probe.Type == "Feature" {
		feature, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing feature: %w", err)
		}
		split, err := antimeridian.Split(feature.Geometry, opts...)
		if err != nil {
			return nil, err
		}
		feature.Geometry = split
		feature.BBox = nil // stale once the geometry moved
		return feature.MarshalJSON()
	}

	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing geometry: %w", err)
	}
	split, err := antimeridian.Split(geometry.Geometry(), opts...)
	if err != nil {
		return nil, err
	}
	return geojson.NewGeometry(split).MarshalJSON()
}

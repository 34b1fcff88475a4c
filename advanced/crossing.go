package advanced

import "math"

// DefaultThreshold is the longitude delta beyond which two consecutive
// vertices are assumed to cross the antimeridian. 180 is the only value that
// is correct for arbitrary input, because it is the furthest two points can be
// apart before the short way around passes through the other hemisphere.
const DefaultThreshold = 180.0

// CheckCrossing reports whether the shorter path between two consecutive
// vertex longitudes crosses the antimeridian. Under o.Validate, a longitude
// outside [-180, 180] throws ErrInvalidInput; without it the arguments are
// taken as-is, which is what the unwrapping pass relies on once it is working
// in continuous longitude space.
func CheckCrossing(lon1, lon2 float64, o *Options) bool {
	if o.Validate {
		checkLonDomain(lon1)
		checkLonDomain(lon2)
	}
	return crosses(lon1, lon2, o.Threshold)
}

func crosses(lon1, lon2, threshold float64) bool {
	return math.Abs(lon2-lon1) > threshold
}

func checkLonDomain(lon float64) {
	if math.Abs(lon) > 180 {
		throwf(ErrInvalidInput, "longitude %v out of range: degrees must be in [-180, 180]", lon)
	}
}

package tools

import (
	"fmt"
	"strconv"
)

// Bbox - a bounding box structure
type Bbox struct {
	LatSW float64
	LonSW float64
	LatNE float64
	LonNE float64
}

// BboxAround builds the box centered on lat,lon extended by margin degrees on
// each side.
func BboxAround(lat, lon, margin float64) Bbox {
	return Bbox{
		LatSW: lat - margin,
		LonSW: lon - margin,
		LatNE: lat + margin,
		LonNE: lon + margin,
	}
}

// Bounds formats the box the way the flightradar24 feed expects it: N,S,W,E
func (b Bbox) Bounds() string {
	return formatCoord(b.LatNE) + "," + formatCoord(b.LatSW) + "," + formatCoord(b.LonSW) + "," + formatCoord(b.LonNE)
}

func PointToWKT(lat, lon float64) string {
	return fmt.Sprintf("POINT(%f %f)", lon, lat)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

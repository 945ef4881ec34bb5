package display

import (
	"fmt"
	"math"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/aircraft"
)

const (
	ColorHigh   = "#64C8FF"
	ColorMedium = "#FFFF64"
	ColorLow    = "#64FF64"
	ColorWhite  = "#FFFFFF"

	ArrowNorth = "↑"
	ArrowEast  = "→"
	ArrowSouth = "↓"
	ArrowWest  = "←"

	RouteUnknown = "Route Unknown"
)

// AltitudeColor maps an altitude in feet to a color band.
func AltitudeColor(altitude int) string {
	switch {
	case altitude > 30000:
		return ColorHigh
	case altitude > 10000:
		return ColorMedium
	default:
		return ColorLow
	}
}

// DirectionArrow maps a heading to one of four arrows using half-open
// quadrants centered on the cardinal points. Anything outside [45,315) is north.
func DirectionArrow(heading int) string {
	switch {
	case heading >= 45 && heading < 135:
		return ArrowEast
	case heading >= 135 && heading < 225:
		return ArrowSouth
	case heading >= 225 && heading < 315:
		return ArrowWest
	default:
		return ArrowNorth
	}
}

// RGB converts a color triple to the #RRGGBB form the device accepts.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func AircraftText(f app.FlightRecord) string {
	return aircraft.Name(f.TypeCode)
}

func RouteText(f app.FlightRecord) string {
	from := airportCode(f.Origin)
	to := airportCode(f.Destination)
	if from == app.PlaceholderAirport && to == app.PlaceholderAirport {
		return RouteUnknown
	}
	return fmt.Sprintf("%s %s %s", from, DirectionArrow(f.Heading), to)
}

func DistanceText(f app.FlightRecord) string {
	return fmt.Sprintf("%.1fNM %dKft", f.Distance, int(math.Floor(float64(f.Altitude)/1000)))
}

func airportCode(code string) string {
	if code == "" {
		return app.PlaceholderAirport
	}
	r := []rune(code)
	if len(r) > 3 {
		return string(r[:3])
	}
	return code
}

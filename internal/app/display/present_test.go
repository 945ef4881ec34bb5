package display

import (
	"testing"

	"github.com/francois-poidevin/flightnotifier/internal/app"
)

func TestAltitudeColor(t *testing.T) {
	tests := []struct {
		altitude int
		want     string
	}{
		{35000, ColorHigh},
		{30001, ColorHigh},
		{30000, ColorMedium},
		{15000, ColorMedium},
		{10001, ColorMedium},
		{10000, ColorLow},
		{5000, ColorLow},
		{0, ColorLow},
	}

	for _, tt := range tests {
		if got := AltitudeColor(tt.altitude); got != tt.want {
			t.Errorf("AltitudeColor(%d) = %s, want %s", tt.altitude, got, tt.want)
		}
	}
}

func TestDirectionArrow(t *testing.T) {
	tests := []struct {
		heading int
		want    string
	}{
		{0, ArrowNorth},
		{44, ArrowNorth},
		{45, ArrowEast},
		{90, ArrowEast},
		{134, ArrowEast},
		{135, ArrowSouth},
		{180, ArrowSouth},
		{225, ArrowWest},
		{270, ArrowWest},
		{314, ArrowWest},
		{315, ArrowNorth},
		{350, ArrowNorth},
		{360, ArrowNorth},
		{-10, ArrowNorth},
	}

	for _, tt := range tests {
		if got := DirectionArrow(tt.heading); got != tt.want {
			t.Errorf("DirectionArrow(%d) = %s, want %s", tt.heading, got, tt.want)
		}
	}
}

func TestRGB(t *testing.T) {
	if got := RGB(100, 200, 255); got != "#64C8FF" {
		t.Errorf("unexpected color %s", got)
	}
	if got := RGB(0, 0, 0); got != "#000000" {
		t.Errorf("unexpected color %s", got)
	}
}

func TestRouteText(t *testing.T) {
	tests := []struct {
		name   string
		flight app.FlightRecord
		want   string
	}{
		{"known route", app.FlightRecord{Origin: "PDX", Destination: "SEA", Heading: 0}, "PDX ↑ SEA"},
		{"long codes are cut", app.FlightRecord{Origin: "KPDX", Destination: "KSEA", Heading: 180}, "KPD ↓ KSE"},
		{"only origin", app.FlightRecord{Origin: "PDX", Destination: "???", Heading: 90}, "PDX → ???"},
		{"both unknown", app.FlightRecord{Origin: "???", Destination: "???", Heading: 270}, RouteUnknown},
		{"empty is unknown", app.FlightRecord{}, RouteUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteText(tt.flight); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDistanceText(t *testing.T) {
	tests := []struct {
		flight app.FlightRecord
		want   string
	}{
		{app.FlightRecord{Distance: 1.46, Altitude: 4500}, "1.5NM 4Kft"},
		{app.FlightRecord{Distance: 0.04, Altitude: 999}, "0.0NM 0Kft"},
		{app.FlightRecord{Distance: 2, Altitude: 35000}, "2.0NM 35Kft"},
		{app.FlightRecord{Distance: 1, Altitude: -200}, "1.0NM -1Kft"},
	}

	for _, tt := range tests {
		if got := DistanceText(tt.flight); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

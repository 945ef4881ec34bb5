package app

import (
	"testing"
	"time"
)

func TestPrecision(t *testing.T) {
	tests := map[int]string{0: "estimated", 1: "tracked", 2: "tracked", 3: "high", 100: "high"}
	for n, want := range tests {
		if got := Precision(n); got != want {
			t.Errorf("Precision(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Fatal("expected no approach without snapshots")
	}

	t0 := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	snaps := []PathSnapshot{
		{FlightRecord{Callsign: "ASA123", Distance: 1.7, Altitude: 5000, TypeCode: "B738"}, t0},
		{FlightRecord{Callsign: "ASA123", Distance: 0.8, Altitude: 4200, TypeCode: "B738"}, t0.Add(10 * time.Second)},
		{FlightRecord{Callsign: "ASA123", Distance: 0.8, Altitude: 4100, TypeCode: "B738"}, t0.Add(20 * time.Second)},
		{FlightRecord{Callsign: "ASA123", Distance: 1.9, Altitude: 3000, TypeCode: "B738"}, t0.Add(30 * time.Second)},
	}

	a, ok := Summarize(snaps)
	if !ok {
		t.Fatal("expected an approach")
	}
	if a.Distance != 0.8 || a.Altitude != 4200 || !a.SeenAt.Equal(t0.Add(10*time.Second)) {
		t.Errorf("expected the first minimum snapshot, got %+v", a)
	}
	if a.AircraftName != "737-800" || a.Precision != "high" || !a.Overhead || a.Snapshots != 4 {
		t.Errorf("unexpected summary %+v", a)
	}
}

package tools

import "testing"

func TestBboxAround(t *testing.T) {
	bbox := BboxAround(45.5, -122.5, 0.5)

	want := Bbox{LatSW: 45, LonSW: -123, LatNE: 46, LonNE: -122}
	if bbox != want {
		t.Fatalf("expected %+v, got %+v", want, bbox)
	}

	if got := bbox.Bounds(); got != "46,45,-123,-122" {
		t.Errorf("unexpected bounds %q", got)
	}
}

func TestPointToWKT(t *testing.T) {
	if got := PointToWKT(43.6, 1.44); got != "POINT(1.440000 43.600000)" {
		t.Errorf("unexpected WKT %q", got)
	}
}

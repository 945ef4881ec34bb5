package aircraft

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"B738", "737-800"},
		{"b738", "737-800"},
		{" A20N ", "A320neo"},
		{"CONC", "Concorde"},
		{"zz99", "ZZ99"},
		{"  xyz ", "XYZ"},
		{"", "Plane"},
		{"   ", "Plane"},
		{"\t", "Plane"},
	}

	for _, tt := range tests {
		if got := Name(tt.code); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

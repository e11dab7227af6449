package traffic

import "testing"

func TestNormalizeStreet(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Main St", "main street"},
		{"N Main St", "main street"},
		{"North Main Street", "main street"},
		{"Main St North", "main street"},
		{"  El   Cajon   Blvd ", "el cajon boulevard"},
		{"Garnet Ave.", "garnet avenue"},
		{"SW Harbor Dr", "harbor drive"},
		{"I-5 N", "i-5"},
		{"Broadway", "broadway"},
		{"North", "north"},
		{"", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		if got := NormalizeStreet(c.in); got != c.want {
			t.Errorf("NormalizeStreet(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeStreetEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"N Main St", "North Main Street"},
		{"Mission Blvd", "MISSION BOULEVARD"},
		{"E University Ave", "University Avenue East"},
	}

	for _, p := range pairs {
		a, b := NormalizeStreet(p[0]), NormalizeStreet(p[1])
		if a != b {
			t.Errorf("normalize %q = %q, normalize %q = %q; want equal", p[0], a, p[1], b)
		}
	}
}

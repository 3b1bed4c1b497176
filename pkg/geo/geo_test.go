package geo

import "testing"

func TestISO3166(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"US", "USA", true},
		{"CA", "CAN", true},
		{"Germany", "DEU", true},
		{" FR ", "FRA", true},
		{"Unknownland", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ISO3166(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ISO3166(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

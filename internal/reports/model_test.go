package reports

import "testing"

func TestBand(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, BandLow},
		{59, BandLow},
		{60, BandMedium},
		{79, BandMedium},
		{80, BandHigh},
		{100, BandHigh},
	}
	for _, tc := range cases {
		if got := Band(tc.score); got != tc.want {
			t.Errorf("Band(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

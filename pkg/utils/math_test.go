package utils

import "testing"

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{0, 0}, {5, 5}, {-7, 7}} {
		if got := Abs(tc.in); got != tc.want {
			t.Errorf("Abs(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

package domain

import (
	"testing"
	"time"
)

func TestSwapDurationMinutes_RoundsToNearest(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"zero", 0, 0},
		{"under half a minute", 29 * time.Second, 0},
		{"half a minute rounds up", 30 * time.Second, 1},
		{"exact minutes", 6 * time.Minute, 6},
		{"rounds down", 6*time.Minute + 20*time.Second, 6},
		{"rounds up", 6*time.Minute + 40*time.Second, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SwapDurationMinutes(start, start.Add(tc.elapsed))
			if got != tc.want {
				t.Errorf("SwapDurationMinutes(+%v) = %d, want %d", tc.elapsed, got, tc.want)
			}
		})
	}
}

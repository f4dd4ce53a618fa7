package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points int
		want   int
	}{
		{name: "zero points", points: 0, want: 1},
		{name: "welcome bonus", points: 100, want: 1},
		{name: "just below threshold", points: 999, want: 1},
		{name: "exact threshold", points: 1000, want: 2},
		{name: "just above threshold", points: 1001, want: 2},
		{name: "several levels", points: 5500, want: 6},
		{name: "small negative rounds down", points: -50, want: 0},
		{name: "negative exact multiple", points: -1000, want: 0},
		{name: "deep negative", points: -1001, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, LevelForPoints(tt.points))
		})
	}
}

func TestProfile_ApplyPointsDelta(t *testing.T) {
	t.Parallel()

	profile := &Profile{Points: 950, Level: 1}

	profile.ApplyPointsDelta(100)
	assert.Equal(t, 1050, profile.Points)
	assert.Equal(t, 2, profile.Level)

	// Negative deltas apply as-is and may cross level boundaries downwards.
	profile.ApplyPointsDelta(-1100)
	assert.Equal(t, -50, profile.Points)
	assert.Equal(t, 0, profile.Level)
}

package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTolerance(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {7, 2}, {8, 3}, {14, 4}, {21, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultTolerance(tt.length), "DefaultTolerance(%d)", tt.length)
	}
}

func TestWithBonus(t *testing.T) {
	tol := WithBonus(DefaultTolerance, 1)
	assert.Equal(t, 0, tol(2), "short answers stay exact")
	assert.Equal(t, 2, tol(4))
	assert.Equal(t, 3, tol(7))

	assert.Equal(t, 2, WithBonus(DefaultTolerance, 0)(7))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		candidates []string
		want       MatchKind
	}{
		{"exact", "water", []string{"liquid", "water"}, MatchExact},
		{"exact wins over earlier near miss", "wate", []string{"water", "wate"}, MatchExact},
		{"one typo", "watr", []string{"water"}, MatchAlmost},
		{"too far", "wtr", []string{"water"}, MatchNone},
		{"short answers are exact only", "on", []string{"no"}, MatchNone},
		{"no candidates", "water", nil, MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.response, tt.candidates, DefaultTolerance))
		})
	}
}

func TestMatch_ToleranceBoundary(t *testing.T) {
	// "to climb" is three edits from "to lift".
	assert.Equal(t, MatchNone, Match("to climb", []string{"to lift"}, func(int) int { return 2 }))
	assert.Equal(t, MatchAlmost, Match("to climb", []string{"to lift"}, func(int) int { return 3 }))

	assert.Equal(t, MatchNone, Match("to climb", []string{"to lift"}, DefaultTolerance))
	assert.Equal(t, MatchAlmost, Match("to climb", []string{"to lift"}, WithBonus(DefaultTolerance, 1)))
}

func TestMatch_NilTolerance(t *testing.T) {
	assert.Equal(t, MatchAlmost, Match("watr", []string{"water"}, nil))
}

func TestMatchKindString(t *testing.T) {
	assert.Equal(t, "exact", MatchExact.String())
	assert.Equal(t, "almost", MatchAlmost.String())
	assert.Equal(t, "none", MatchNone.String())
}

package answer

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// MatchKind is how closely a response matched a candidate list.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchAlmost
	MatchExact
)

func (m MatchKind) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchAlmost:
		return "almost"
	default:
		return "none"
	}
}

// ToleranceFunc returns how many edits are forgiven for a candidate answer
// of the given length in runes.
type ToleranceFunc func(length int) int

// DefaultTolerance forgives nothing for answers of up to two characters,
// one edit up to five, two up to seven, and one more for every further
// seven characters.
func DefaultTolerance(length int) int {
	switch {
	case length <= 2:
		return 0
	case length <= 5:
		return 1
	case length <= 7:
		return 2
	default:
		return 2 + length/7
	}
}

// WithBonus returns a tolerance that forgives bonus more edits than base
// for every answer longer than two characters.
func WithBonus(base ToleranceFunc, bonus int) ToleranceFunc {
	if bonus == 0 {
		return base
	}
	return func(length int) int {
		t := base(length)
		if length <= 2 {
			return t
		}
		return t + bonus
	}
}

// Match compares an already normalized response against candidate answers.
// Any exact match wins; otherwise a candidate within its Levenshtein
// tolerance makes the response almost right.
func Match(response string, candidates []string, tolerance ToleranceFunc) MatchKind {
	if tolerance == nil {
		tolerance = DefaultTolerance
	}

	result := MatchNone
	for _, c := range candidates {
		if c == response {
			return MatchExact
		}
		if result == MatchNone && edlib.LevenshteinDistance(response, c) <= tolerance(utf8.RuneCountInString(c)) {
			result = MatchAlmost
		}
	}
	return result
}

package answer

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// punctuation is stripped from answers before comparison.
var punctuation = strings.NewReplacer(
	".", "",
	",", "",
	"'", "",
	"’", "",
	"/", "",
	":", "",
)

// NormalizeString prepares an answer or candidate for comparison: it folds
// full-width Latin and half-width katakana to their usual widths, trims,
// lowercases, turns hyphens into spaces and strips . , ' ’ / and :.
// Normalizing twice gives the same result as normalizing once.
func NormalizeString(s string) string {
	s = width.Fold.String(s)
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = punctuation.Replace(s)
	return strings.TrimSpace(s)
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, NormalizeString(v))
	}
	return out
}

var digitPattern = regexp.MustCompile(`[0-9]+`)

// ExtractDigits returns the runs of ASCII digits in s, in order.
func ExtractDigits(s string) []string {
	return digitPattern.FindAllString(s, -1)
}

func hasDigits(s string) bool {
	return digitPattern.MatchString(s)
}

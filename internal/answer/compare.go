package answer

import (
	"slices"

	"github.com/abhisek/kotoba/internal/subject"
)

// CheckMeaning judges a meaning answer using the default tolerance.
func CheckMeaning(input string, s subject.Subject, userSynonyms []string) CheckResult {
	result, _ := compareMeaning(NormalizeString(input), s, userSynonyms, DefaultTolerance)
	return result
}

// CheckReading judges a reading answer. Readings are never fuzzy-matched:
// the answer must equal an accepted reading. Subjects without readings
// never pass.
func CheckReading(input string, s subject.Subject) CheckResult {
	return compareReading(NormalizeString(input), s)
}

// meaningAnswers returns the normalized meanings, user synonyms and
// whitelisted auxiliary meanings of s.
func meaningAnswers(s subject.Subject, userSynonyms []string) []string {
	base := s.Base()
	answers := make([]string, 0, len(base.Meanings)+len(userSynonyms)+len(base.AuxiliaryMeanings))
	for _, m := range base.Meanings {
		answers = append(answers, NormalizeString(m.Meaning))
	}
	answers = append(answers, normalizeAll(userSynonyms)...)
	answers = append(answers, normalizeAll(subject.AuxiliaryMeanings(s, subject.AuxiliaryWhitelist))...)
	return answers
}

// isBlacklisted reports whether a normalized input is a known wrong
// meaning of s.
func isBlacklisted(input string, s subject.Subject) bool {
	return slices.Contains(normalizeAll(subject.AuxiliaryMeanings(s, subject.AuxiliaryBlacklist)), input)
}

// compareMeaning judges a normalized meaning answer. The second return
// value is true when the input is blacklisted, in which case the answer
// never passes.
func compareMeaning(input string, s subject.Subject, userSynonyms []string, tolerance ToleranceFunc) (CheckResult, bool) {
	result := CheckResult{MultipleAnswers: len(s.Base().Meanings) > 1}
	if input == "" {
		return result, false
	}
	if isBlacklisted(input, s) {
		return result, true
	}

	candidates := meaningAnswers(s, userSynonyms)

	// "2 days" must not pass for "3 days" just because it is one edit away.
	if hasDigits(input) {
		var numeric []string
		for _, a := range candidates {
			if hasDigits(a) {
				numeric = append(numeric, a)
			}
		}
		if len(numeric) > 0 {
			want := ExtractDigits(input)
			candidates = slices.DeleteFunc(numeric, func(a string) bool {
				return !slices.Equal(ExtractDigits(a), want)
			})
			if len(candidates) == 0 {
				return result, false
			}
		}
	}

	switch Match(input, candidates, tolerance) {
	case MatchExact:
		result.Passed, result.Accurate = true, true
	case MatchAlmost:
		result.Passed = true
	}
	return result, false
}

func compareReading(input string, s subject.Subject) CheckResult {
	readings, ok := subject.ReadingsOf(s)
	if !ok {
		return CheckResult{}
	}
	accepted := subject.AcceptedReadings(readings)
	passed := input != "" && slices.Contains(accepted, input)
	return CheckResult{
		Passed:          passed,
		Accurate:        passed,
		MultipleAnswers: len(accepted) > 1,
	}
}

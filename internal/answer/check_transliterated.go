package answer

import (
	"slices"
	"strings"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// TransliteratedPlugin catches the reading given when the meaning was
// asked for, and the other way round.
type TransliteratedPlugin struct{}

func (p *TransliteratedPlugin) Name() string { return "check-transliterated" }

func (p *TransliteratedPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	return in.Response != ""
}

func (p *TransliteratedPlugin) Evaluate(in *EvaluateInput) *Result {
	switch in.TaskType {
	case TaskMeaning:
		readings := p.readings(in.Subject.Subject)
		candidates := append([]string{in.hiraganaResponse()}, romajiReadings(in.Response)...)
		if slices.ContainsFunc(candidates, func(c string) bool { return slices.Contains(readings, c) }) {
			return hint("We want the meaning, not the reading. Do you want to retry?")
		}
	case TaskReading:
		response := in.hiraganaResponse()
		for _, m := range meaningAnswers(in.Subject.Subject, in.UserSynonyms) {
			if m == in.Response || slices.Contains(romajiReadings(m), response) {
				return hint("We want the reading, not the meaning. Do you want to retry?")
			}
		}
	}
	return nil
}

// romajiReadings returns the hiragana s could stand for when it is romaji,
// both as typed into an IME and as printed in Hepburn.
func romajiReadings(s string) []string {
	s = strings.ReplaceAll(s, " ", "")
	ime, hepburn := kana.FromRomaji(s), kana.FromHepburn(s)
	if ime == hepburn {
		return []string{ime}
	}
	return []string{ime, hepburn}
}

// readings returns the hiragana a learner could type as the reading of s.
// Kana-only vocabulary is its own reading.
func (p *TransliteratedPlugin) readings(s subject.Subject) []string {
	switch v := s.(type) {
	case *subject.KanaVocabulary:
		return []string{kana.ToHiragana(v.Characters)}
	default:
		readings, ok := subject.ReadingsOf(s)
		if !ok {
			return nil
		}
		out := make([]string, 0, len(readings))
		for _, r := range readings {
			out = append(out, kana.ToHiragana(r.Reading))
		}
		return out
	}
}

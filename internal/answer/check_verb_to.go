package answer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/kotoba/internal/subject"
)

// uRow holds the kana a Japanese verb's dictionary form can end in.
var uRow = map[rune]bool{
	'う': true, 'く': true, 'ぐ': true, 'す': true, 'つ': true,
	'ぬ': true, 'ぶ': true, 'む': true, 'る': true,
}

// VerbStartsWithToPlugin catches verb meanings given without their
// leading "to".
type VerbStartsWithToPlugin struct{}

func (p *VerbStartsWithToPlugin) Name() string { return "check-that-verb-starts-with-to" }

func (p *VerbStartsWithToPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	_, ok := in.Subject.Subject.(*subject.Vocabulary)
	return ok && in.TaskType == TaskMeaning
}

func (p *VerbStartsWithToPlugin) Evaluate(in *EvaluateInput) *Result {
	if !p.ShouldEvaluate(in) || in.Response == "" || strings.HasPrefix(in.Response, toPrefix) {
		return nil
	}

	var stripped []string
	for _, m := range meaningAnswers(in.Subject.Subject, in.UserSynonyms) {
		if rest, ok := strings.CutPrefix(m, toPrefix); ok {
			stripped = append(stripped, rest)
		}
	}
	if Match(in.Response, stripped, in.matchTolerance()) == MatchNone {
		return nil
	}

	last, _ := utf8.DecodeLastRuneInString(in.Subject.Subject.Base().Characters)
	if uRow[last] {
		return hint(fmt.Sprintf("This word ends in “%c”, so it's a verb. Try again with “to” in front.", last))
	}
	return hint("This word is a verb. Try again with “to” in front.")
}

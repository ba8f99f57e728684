package answer

import (
	"strings"

	"github.com/abhisek/kotoba/internal/subject"
)

const toPrefix = "to "

// KanjiDoesNotStartWithToPlugin catches kanji meanings typed as verbs.
// Kanji meanings never start with "to".
type KanjiDoesNotStartWithToPlugin struct{}

func (p *KanjiDoesNotStartWithToPlugin) Name() string { return "check-kanji-does-not-start-with-to" }

func (p *KanjiDoesNotStartWithToPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	_, ok := in.Subject.Subject.(*subject.Kanji)
	return ok && in.TaskType == TaskMeaning
}

func (p *KanjiDoesNotStartWithToPlugin) Evaluate(in *EvaluateInput) *Result {
	stripped, ok := strings.CutPrefix(in.Response, toPrefix)
	if !ok || !p.ShouldEvaluate(in) {
		return nil
	}
	result, _ := compareMeaning(strings.TrimSpace(stripped), in.Subject.Subject, in.UserSynonyms, in.matchTolerance())
	if !result.Passed {
		return nil
	}
	return hint("This is a kanji, so its meaning doesn't start with “to”. Do you want to retry?")
}

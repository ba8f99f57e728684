package answer

import (
	"fmt"
	"slices"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// RelatedMeaningsAndReadingsPlugin catches the meaning or reading of a
// related subject written with the same characters, e.g. the radical's
// meaning given for the kanji, or the vocabulary reading given for the
// kanji.
type RelatedMeaningsAndReadingsPlugin struct{}

func (p *RelatedMeaningsAndReadingsPlugin) Name() string { return "check-related-meanings-and-readings" }

func (p *RelatedMeaningsAndReadingsPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	return in.Subject.Subject.Base().Characters != "" && len(in.Subject.Related()) > 0
}

func (p *RelatedMeaningsAndReadingsPlugin) Evaluate(in *EvaluateInput) *Result {
	s := in.Subject.Subject
	for _, related := range in.Subject.Related() {
		if related.Base().Characters != s.Base().Characters {
			continue
		}
		if p.matches(in, related) {
			return hint(fmt.Sprintf("That's the %s %s. We want the %s %s. Do you want to retry?",
				related.Kind().Label(), in.TaskType, s.Kind().Label(), in.TaskType))
		}
	}
	return nil
}

func (p *RelatedMeaningsAndReadingsPlugin) matches(in *EvaluateInput, related subject.Subject) bool {
	if in.TaskType == TaskMeaning {
		return slices.Contains(meaningAnswers(related, nil), in.Response)
	}

	// Readings only bleed between kanji and vocabulary.
	if _, ok := subject.ReadingsOf(in.Subject.Subject); !ok {
		return false
	}
	readings, ok := subject.ReadingsOf(related)
	if !ok {
		return false
	}
	response := in.hiraganaResponse()
	for _, r := range readings {
		if kana.ToHiragana(r.Reading) == response {
			return true
		}
	}
	return false
}

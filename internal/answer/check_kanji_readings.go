package answer

import (
	"fmt"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// KanjiReadingsPlugin catches a real reading of the kanji that is of a
// different type than the one being taught, e.g. the kun'yomi when the
// on'yomi is asked for.
type KanjiReadingsPlugin struct{}

func (p *KanjiReadingsPlugin) Name() string { return "check-kanji-readings" }

func (p *KanjiReadingsPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	_, ok := in.Subject.Subject.(*subject.Kanji)
	return ok && in.TaskType == TaskReading
}

func (p *KanjiReadingsPlugin) Evaluate(in *EvaluateInput) *Result {
	k, ok := in.Subject.Subject.(*subject.Kanji)
	if !ok {
		return nil
	}
	primary, ok := subject.PrimaryReading(k.Readings)
	if !ok || primary.Type.Label() == "" {
		return nil
	}

	response := in.hiraganaResponse()
	for _, r := range k.Readings {
		if r.Type == primary.Type || kana.ToHiragana(r.Reading) != response {
			continue
		}
		if r.Type.Label() == "" {
			return nil
		}
		return hint(fmt.Sprintf("That's the %s reading. We're looking for the %s. Do you want to retry?",
			r.Type.Label(), primary.Type.Label()))
	}
	return nil
}

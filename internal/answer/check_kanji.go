package answer

import (
	"strings"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// KanjiPlugin catches answers that repeat the characters being asked
// about, which happens when the IME is left in Japanese mode. Characters
// without kanji are left to TransliteratedPlugin, except for radicals,
// whose glyphs are often not kanji at all.
type KanjiPlugin struct{}

func (p *KanjiPlugin) Name() string { return "check-kanji" }

func (p *KanjiPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	chars := in.Subject.Subject.Base().Characters
	if chars == "" {
		return false
	}
	_, radical := in.Subject.Subject.(*subject.Radical)
	return radical || strings.ContainsFunc(chars, kana.IsKanji)
}

func (p *KanjiPlugin) Evaluate(in *EvaluateInput) *Result {
	if in.Response == "" || in.Response != NormalizeString(in.Subject.Subject.Base().Characters) {
		return nil
	}
	return hint("")
}

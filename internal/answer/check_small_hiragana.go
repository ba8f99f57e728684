package answer

import (
	"fmt"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// SmallHiraganaPlugin catches readings where a small kana such as ょ was
// typed full size.
type SmallHiraganaPlugin struct{}

func (p *SmallHiraganaPlugin) Name() string { return "check-small-hiragana" }

func (p *SmallHiraganaPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	if in.TaskType != TaskReading {
		return false
	}
	_, ok := subject.ReadingsOf(in.Subject.Subject)
	return ok
}

func (p *SmallHiraganaPlugin) Evaluate(in *EvaluateInput) *Result {
	response := []rune(in.hiraganaResponse())
	for _, reading := range in.acceptedReadings() {
		if missed, ok := missedSmallKana([]rune(reading), response); ok {
			return hint(fmt.Sprintf("Watch out for the small %c. Try typing “%s”.", missed, kana.ToIME(reading)))
		}
	}
	return nil
}

// missedSmallKana returns the first small kana of reading that response
// has in full size, provided that is the only kind of difference between
// them.
func missedSmallKana(reading, response []rune) (rune, bool) {
	if len(reading) != len(response) {
		return 0, false
	}
	var missed rune
	for i, r := range reading {
		if r == response[i] {
			continue
		}
		full, ok := kana.FullSize(r)
		if !ok || full != response[i] {
			return 0, false
		}
		if missed == 0 {
			missed = r
		}
	}
	return missed, missed != 0
}

package answer

import (
	"fmt"
	"strings"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// naRow maps a vowel kana to the な-row kana a lone "n" in front of it
// turns into.
var naRow = map[rune]rune{
	'あ': 'な', 'い': 'に', 'う': 'ぬ', 'え': 'ね', 'お': 'の',
}

// nyRow maps や, ゆ and よ to the small kana that follow に when a lone
// "n" runs into them.
var nyRow = map[rune]rune{
	'や': 'ゃ', 'ゆ': 'ゅ', 'よ': 'ょ',
}

func isNaRow(r rune) bool {
	return r == 'な' || r == 'に' || r == 'ぬ' || r == 'ね' || r == 'の'
}

// nKey collapses the spellings an IME produces when ん is typed as a
// single "n": ん before a vowel or a y-kana reads as the な-row, and ん
// before the な-row is swallowed. Two readings with the same key differ
// only in how their ん was typed.
func nKey(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != 'ん' || i+1 == len(runes) {
			b.WriteRune(r)
			continue
		}
		next := runes[i+1]
		switch {
		case naRow[next] != 0:
			b.WriteRune(naRow[next])
			i++
		case nyRow[next] != 0:
			b.WriteRune('に')
			b.WriteRune(nyRow[next])
			i++
		case isNaRow(next):
			// ん swallowed by the following な-row kana.
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NPlugin catches readings where ん was typed as a single "n", which an
// IME turns into a な-row kana or drops altogether.
type NPlugin struct{}

func (p *NPlugin) Name() string { return "check-n" }

func (p *NPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	if in.TaskType != TaskReading {
		return false
	}
	_, ok := subject.ReadingsOf(in.Subject.Subject)
	return ok
}

func (p *NPlugin) Evaluate(in *EvaluateInput) *Result {
	typed := in.hiraganaResponse()
	response := typed
	if before, ok := strings.CutSuffix(typed, "n"); ok {
		response = before + "ん"
	}
	if !kana.IsKanaOnly(response) {
		return nil
	}

	key := nKey(response)
	for _, reading := range in.acceptedReadings() {
		if reading != typed && nKey(reading) == key {
			return hint(fmt.Sprintf("Remember that ん is typed as “nn”. Try typing “%s”.", kana.ToIME(reading)))
		}
	}
	return nil
}

package answer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// soundAlikes lists the kana a long vowel may be written with after a
// mora ending in the key vowel.
var soundAlikes = map[rune][]string{
	'あ': {"あ"},
	'い': {"い"},
	'う': {"う"},
	'え': {"え", "い"},
	'お': {"お", "う"},
}

// LongDashPlugin catches readings where the long vowel mark was spelled
// out as a vowel kana.
type LongDashPlugin struct{}

func (p *LongDashPlugin) Name() string { return "check-long-dash" }

func (p *LongDashPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	if in.TaskType != TaskReading {
		return false
	}
	_, ok := subject.ReadingsOf(in.Subject.Subject)
	return ok
}

func (p *LongDashPlugin) Evaluate(in *EvaluateInput) *Result {
	response := in.hiraganaResponse()
	for _, reading := range in.acceptedReadings() {
		if !strings.ContainsRune(reading, kana.ProlongedSoundMark) {
			continue
		}
		if slices.Contains(expandLongVowels(reading), response) {
			return hint(fmt.Sprintf("This reading uses the long vowel mark ー. Try typing “%s”.", kana.ToIME(reading)))
		}
	}
	return nil
}

// expandLongVowels returns every spelling of reading with each ー replaced
// by a vowel kana that sounds like it. A ー with no vowel before it makes
// the reading unexpandable.
func expandLongVowels(reading string) []string {
	spellings := []string{""}
	var prev string
	for _, m := range kana.Split(reading) {
		options := []string{m}
		if m == string(kana.ProlongedSoundMark) {
			v, ok := kana.Vowel(prev)
			if !ok {
				return nil
			}
			options = soundAlikes[v]
		}

		next := make([]string, 0, len(spellings)*len(options))
		for _, s := range spellings {
			for _, o := range options {
				next = append(next, s+o)
			}
		}
		spellings = next
		if m != string(kana.ProlongedSoundMark) {
			prev = m
		}
	}
	return spellings
}

package answer

import "github.com/abhisek/kotoba/internal/subject"

func meanings(values ...string) []subject.Meaning {
	out := make([]subject.Meaning, len(values))
	for i, v := range values {
		out[i] = subject.Meaning{Meaning: v, Primary: i == 0, AcceptedAnswer: true}
	}
	return out
}

func accepted(values ...string) []subject.Reading {
	out := make([]subject.Reading, len(values))
	for i, v := range values {
		out[i] = subject.Reading{Reading: v, Primary: i == 0, AcceptedAnswer: true}
	}
	return out
}

func vocab(id int, chars string, m []subject.Meaning, r []subject.Reading) *subject.Vocabulary {
	return &subject.Vocabulary{
		Common:   subject.Common{ID: id, Characters: chars, Meanings: m},
		Readings: r,
	}
}

func enrich(s subject.Subject) *subject.Enriched {
	return &subject.Enriched{Subject: s}
}

// waterKanji has one accepted on'yomi and a kun'yomi that is not taught.
func waterKanji() *subject.Kanji {
	return &subject.Kanji{
		Common: subject.Common{
			ID:         463,
			Characters: "水",
			Meanings:   meanings("Water"),
			AuxiliaryMeanings: []subject.AuxiliaryMeaning{
				{Meaning: "Aqua", Type: subject.AuxiliaryWhitelist},
				{Meaning: "Fire", Type: subject.AuxiliaryBlacklist},
			},
		},
		Readings: []subject.Reading{
			{Reading: "すい", Primary: true, AcceptedAnswer: true, Type: subject.ReadingOnyomi},
			{Reading: "みず", Type: subject.ReadingKunyomi},
		},
	}
}

// oneFamily returns the radical, kanji and vocabulary written 一.
func oneFamily() (*subject.Radical, *subject.Kanji, *subject.Vocabulary) {
	radical := &subject.Radical{Common: subject.Common{ID: 1, Characters: "一", Meanings: meanings("Ground")}}
	kanji := &subject.Kanji{
		Common: subject.Common{ID: 440, Characters: "一", Meanings: meanings("One")},
		Readings: []subject.Reading{
			{Reading: "いち", Primary: true, AcceptedAnswer: true, Type: subject.ReadingOnyomi},
			{Reading: "ひと", Type: subject.ReadingKunyomi},
		},
	}
	vocabulary := vocab(2467, "一", meanings("One"), accepted("いち"))
	return radical, kanji, vocabulary
}

func evalInput(task TaskType, response string, e *subject.Enriched) *EvaluateInput {
	return &EvaluateInput{Response: NormalizeString(response), TaskType: task, Subject: e}
}

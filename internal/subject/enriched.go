package subject

import "fmt"

// StudyMaterial carries what the learner wrote for a subject.
type StudyMaterial struct {
	MeaningSynonyms []string `json:"meaning_synonyms"`
	MeaningNote     string   `json:"meaning_note,omitempty"`
	ReadingNote     string   `json:"reading_note,omitempty"`
}

// Enriched is a subject together with the other subjects that share its
// characters and the learner's study material. The related slices are
// snapshots: they hold no back-references and are never modified by the
// answer checker.
type Enriched struct {
	Subject       Subject
	Radicals      []*Radical
	Kanji         []*Kanji
	Vocabulary    []*Vocabulary
	StudyMaterial *StudyMaterial
}

// Synonyms returns the learner's meaning synonyms, or nil.
func (e *Enriched) Synonyms() []string {
	if e.StudyMaterial == nil {
		return nil
	}
	return e.StudyMaterial.MeaningSynonyms
}

// Related returns every related subject of a different kind than the
// subject itself, in radical, kanji, vocabulary order.
func (e *Enriched) Related() []Subject {
	kind := e.Subject.Kind()
	var out []Subject
	if kind != KindRadical {
		for _, r := range e.Radicals {
			out = append(out, r)
		}
	}
	if kind != KindKanji {
		for _, k := range e.Kanji {
			out = append(out, k)
		}
	}
	if kind != KindVocabulary && kind != KindKanaVocabulary {
		for _, v := range e.Vocabulary {
			out = append(out, v)
		}
	}
	return out
}

// Warnings lists data problems that make some hints unavailable. The
// checker degrades gracefully on all of them; callers decide whether to
// surface them.
func Warnings(s Subject) []string {
	var out []string
	base := s.Base()
	if len(base.Meanings) == 0 {
		out = append(out, fmt.Sprintf("subject %d has no meanings", base.ID))
	}

	k, ok := s.(*Kanji)
	if !ok {
		return out
	}
	if _, ok := PrimaryReading(k.Readings); !ok {
		out = append(out, fmt.Sprintf("kanji %d has no primary reading", base.ID))
	}
	for _, r := range k.Readings {
		if r.Type == "" {
			out = append(out, fmt.Sprintf("kanji %d reading %q has no type", base.ID, r.Reading))
		}
	}
	return out
}

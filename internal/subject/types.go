package subject

// Kind identifies a subject variant.
type Kind string

const (
	KindRadical        Kind = "radical"
	KindKanji          Kind = "kanji"
	KindVocabulary     Kind = "vocabulary"
	KindKanaVocabulary Kind = "kana_vocabulary"
)

// Label returns the learner-facing name for the kind. Kana-only vocabulary
// is presented as vocabulary.
func (k Kind) Label() string {
	if k == KindKanaVocabulary {
		return string(KindVocabulary)
	}
	return string(k)
}

// Meaning is one accepted or listed meaning of a subject.
type Meaning struct {
	Meaning        string `json:"meaning" validate:"required"`
	Primary        bool   `json:"primary"`
	AcceptedAnswer bool   `json:"accepted_answer"`
}

// AuxiliaryType says whether an auxiliary meaning is an extra accepted
// answer or a known wrong one.
type AuxiliaryType string

const (
	AuxiliaryWhitelist AuxiliaryType = "whitelist"
	AuxiliaryBlacklist AuxiliaryType = "blacklist"
)

// AuxiliaryMeaning is a meaning that is not taught but is explicitly
// accepted (whitelist) or rejected (blacklist).
type AuxiliaryMeaning struct {
	Meaning string        `json:"meaning" validate:"required"`
	Type    AuxiliaryType `json:"type" validate:"required,oneof=whitelist blacklist"`
}

// ReadingType classifies a kanji reading.
type ReadingType string

const (
	ReadingOnyomi  ReadingType = "onyomi"
	ReadingKunyomi ReadingType = "kunyomi"
	ReadingNanori  ReadingType = "nanori"
)

// Label returns the learner-facing name of the reading type, or "" if the
// type is unknown.
func (t ReadingType) Label() string {
	switch t {
	case ReadingOnyomi:
		return "on'yomi"
	case ReadingKunyomi:
		return "kun'yomi"
	case ReadingNanori:
		return "nanori"
	default:
		return ""
	}
}

// Reading is one reading of a kanji or vocabulary subject. Type is only
// set for kanji.
type Reading struct {
	Reading        string      `json:"reading" validate:"required"`
	Primary        bool        `json:"primary"`
	AcceptedAnswer bool        `json:"accepted_answer"`
	Type           ReadingType `json:"type,omitempty" validate:"omitempty,oneof=onyomi kunyomi nanori"`
}

// Common holds the fields shared by every subject variant.
type Common struct {
	ID                int
	Characters        string // empty for radicals that only have an image
	Meanings          []Meaning
	AuxiliaryMeanings []AuxiliaryMeaning
}

// Base gives access to the shared fields.
func (c *Common) Base() *Common { return c }

func (c *Common) sealed() {}

// Subject is a closed sum over *Radical, *Kanji, *Vocabulary and
// *KanaVocabulary. Code that needs variant-only fields must narrow with a
// type switch or ReadingsOf.
type Subject interface {
	Kind() Kind
	Base() *Common
	sealed()
}

// Radical is a building block of kanji. It has meanings only.
type Radical struct {
	Common
}

func (*Radical) Kind() Kind { return KindRadical }

// Kanji is a single character with typed readings.
type Kanji struct {
	Common
	Readings []Reading
}

func (*Kanji) Kind() Kind { return KindKanji }

// Vocabulary is a word written with kanji.
type Vocabulary struct {
	Common
	Readings []Reading
}

func (*Vocabulary) Kind() Kind { return KindVocabulary }

// KanaVocabulary is a word written only in kana. Its characters are its
// reading, so it is never asked for one.
type KanaVocabulary struct {
	Common
}

func (*KanaVocabulary) Kind() Kind { return KindKanaVocabulary }

// ReadingsOf returns the readings of a kanji or vocabulary subject. ok is
// false for the other variants.
func ReadingsOf(s Subject) (readings []Reading, ok bool) {
	switch v := s.(type) {
	case *Kanji:
		return v.Readings, true
	case *Vocabulary:
		return v.Readings, true
	default:
		return nil, false
	}
}

// AcceptedReadings returns the readings marked as accepted answers.
func AcceptedReadings(readings []Reading) []string {
	out := make([]string, 0, len(readings))
	for _, r := range readings {
		if r.AcceptedAnswer {
			out = append(out, r.Reading)
		}
	}
	return out
}

// PrimaryReading returns the first reading flagged primary.
func PrimaryReading(readings []Reading) (Reading, bool) {
	for _, r := range readings {
		if r.Primary {
			return r, true
		}
	}
	return Reading{}, false
}

// PrimaryMeaning returns the first meaning flagged primary, falling back
// to the first meaning.
func PrimaryMeaning(s Subject) string {
	meanings := s.Base().Meanings
	for _, m := range meanings {
		if m.Primary {
			return m.Meaning
		}
	}
	if len(meanings) > 0 {
		return meanings[0].Meaning
	}
	return ""
}

// AuxiliaryMeanings returns the auxiliary meanings of the given type.
func AuxiliaryMeanings(s Subject, typ AuxiliaryType) []string {
	var out []string
	for _, a := range s.Base().AuxiliaryMeanings {
		if a.Type == typ {
			out = append(out, a.Meaning)
		}
	}
	return out
}

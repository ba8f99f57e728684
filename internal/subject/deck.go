package subject

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

// ErrUnknownKind is returned for a subject whose object field names no
// known variant.
var ErrUnknownKind = errors.New("unknown subject kind")

// DeckError describes a deck entry that could not be loaded.
type DeckError struct {
	Path  string // empty when decoding from a reader
	Index int    // position of the entry in the deck
	Err   error
}

func (e *DeckError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("deck entry %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("%s: deck entry %d: %v", e.Path, e.Index, e.Err)
}

func (e *DeckError) Unwrap() error { return e.Err }

// record is the on-disk form of a subject.
type record struct {
	ID                int                `json:"id" validate:"required,gt=0"`
	Object            Kind               `json:"object" validate:"required"`
	Characters        string             `json:"characters"`
	Meanings          []Meaning          `json:"meanings" validate:"required,min=1,dive"`
	AuxiliaryMeanings []AuxiliaryMeaning `json:"auxiliary_meanings" validate:"dive"`
	Readings          []Reading          `json:"readings" validate:"dive"`
}

// entry is the on-disk form of an enriched subject.
type entry struct {
	Subject       record         `json:"subject"`
	Radicals      []record       `json:"radicals" validate:"dive"`
	Kanji         []record       `json:"kanji" validate:"dive"`
	Vocabulary    []record       `json:"vocabulary" validate:"dive"`
	StudyMaterial *StudyMaterial `json:"study_material"`
}

func (r record) build() (Subject, error) {
	common := Common{
		ID:                r.ID,
		Characters:        r.Characters,
		Meanings:          r.Meanings,
		AuxiliaryMeanings: r.AuxiliaryMeanings,
	}
	switch r.Object {
	case KindRadical:
		return &Radical{Common: common}, nil
	case KindKanji:
		return &Kanji{Common: common, Readings: r.Readings}, nil
	case KindVocabulary:
		return &Vocabulary{Common: common, Readings: r.Readings}, nil
	case KindKanaVocabulary:
		return &KanaVocabulary{Common: common}, nil
	default:
		return nil, fmt.Errorf("%w %q (subject %d)", ErrUnknownKind, r.Object, r.ID)
	}
}

// buildAs builds a related record and checks it has the kind its list
// implies.
func buildAs[T Subject](r record, want Kind) (T, error) {
	var zero T
	s, err := r.build()
	if err != nil {
		return zero, err
	}
	t, ok := s.(T)
	if !ok {
		return zero, fmt.Errorf("subject %d is %s, listed as %s", r.ID, s.Kind(), want)
	}
	return t, nil
}

func buildAll[T Subject](records []record, want Kind) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		t, err := buildAs[T](r, want)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (e entry) build() (*Enriched, error) {
	s, err := e.Subject.build()
	if err != nil {
		return nil, err
	}
	radicals, err := buildAll[*Radical](e.Radicals, KindRadical)
	if err != nil {
		return nil, err
	}
	kanji, err := buildAll[*Kanji](e.Kanji, KindKanji)
	if err != nil {
		return nil, err
	}
	vocabulary, err := buildAll[*Vocabulary](e.Vocabulary, KindVocabulary)
	if err != nil {
		return nil, err
	}
	return &Enriched{
		Subject:       s,
		Radicals:      radicals,
		Kanji:         kanji,
		Vocabulary:    vocabulary,
		StudyMaterial: e.StudyMaterial,
	}, nil
}

// Deck is an ordered collection of enriched subjects.
type Deck struct {
	Entries []*Enriched
	byID    map[int]*Enriched
}

// NewDeck indexes entries by subject ID. Later duplicates win.
func NewDeck(entries []*Enriched) *Deck {
	d := &Deck{Entries: entries, byID: make(map[int]*Enriched, len(entries))}
	for _, e := range entries {
		d.byID[e.Subject.Base().ID] = e
	}
	return d
}

// Find returns the entry for a subject ID.
func (d *Deck) Find(id int) (*Enriched, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// Len returns the number of entries.
func (d *Deck) Len() int { return len(d.Entries) }

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeDeck reads a JSON array of enriched subjects.
func DecodeDeck(r io.Reader) (*Deck, error) {
	var raw []entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	entries := make([]*Enriched, 0, len(raw))
	for i, e := range raw {
		if err := validate.Struct(e); err != nil {
			return nil, &DeckError{Index: i, Err: err}
		}
		enriched, err := e.build()
		if err != nil {
			return nil, &DeckError{Index: i, Err: err}
		}
		entries = append(entries, enriched)
	}
	return NewDeck(entries), nil
}

// LoadDeck reads a deck file.
func LoadDeck(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	d, err := DecodeDeck(f)
	if err != nil {
		var de *DeckError
		if errors.As(err, &de) {
			de.Path = path
			return nil, de
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

package kana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// katakanaOffset is the distance between a katakana code point and its
// hiragana counterpart.
const katakanaOffset = 0x60

// ToHiragana converts katakana in s to hiragana. Decomposed voicing marks
// are composed first so that か+゛ compares equal to が. The prolonged
// sound mark and non-kana characters are left untouched.
func ToHiragana(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if r >= katakanaFirst && r <= 0x30F6 {
			return r - katakanaOffset
		}
		return r
	}, s)
}

// small maps each small hiragana to its full-size form.
var small = map[rune]rune{
	'ぁ': 'あ',
	'ぃ': 'い',
	'ぅ': 'う',
	'ぇ': 'え',
	'ぉ': 'お',
	'っ': 'つ',
	'ゃ': 'や',
	'ゅ': 'ゆ',
	'ょ': 'よ',
	'ゎ': 'わ',
	'ゕ': 'か',
	'ゖ': 'け',
}

// IsSmall reports whether r is a small hiragana.
func IsSmall(r rune) bool {
	_, ok := small[r]
	return ok
}

// IsSmallY reports whether r is one of ゃ, ゅ or ょ.
func IsSmallY(r rune) bool {
	return r == 'ゃ' || r == 'ゅ' || r == 'ょ'
}

// FullSize returns the full-size form of a small hiragana. ok is false
// when r is not small.
func FullSize(r rune) (full rune, ok bool) {
	full, ok = small[r]
	return full, ok
}

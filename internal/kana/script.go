package kana

// Unicode ranges for the two kana scripts.
const (
	hiraganaFirst = 0x3041
	hiraganaLast  = 0x3096
	katakanaFirst = 0x30A1
	katakanaLast  = 0x30FA

	// ProlongedSoundMark is the katakana long vowel mark, also used in
	// hiragana readings of loanwords.
	ProlongedSoundMark = 'ー'
)

// IsHiragana reports whether r is a hiragana character, including the
// hiragana iteration marks.
func IsHiragana(r rune) bool {
	return (r >= hiraganaFirst && r <= hiraganaLast) || r == 'ゝ' || r == 'ゞ'
}

// IsKatakana reports whether r is a katakana character, including the
// katakana iteration marks.
func IsKatakana(r rune) bool {
	return (r >= katakanaFirst && r <= katakanaLast) || r == 'ヽ' || r == 'ヾ'
}

// IsKana reports whether r belongs to either kana script or is the
// prolonged sound mark.
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r) || r == ProlongedSoundMark
}

// ContainsKana reports whether s has at least one kana character.
func ContainsKana(s string) bool {
	for _, r := range s {
		if IsKana(r) {
			return true
		}
	}
	return false
}

// ContainsNonKana reports whether s has at least one character outside
// the kana scripts. Whitespace counts as non-kana.
func ContainsNonKana(s string) bool {
	for _, r := range s {
		if !IsKana(r) {
			return true
		}
	}
	return false
}

// IsKanaOnly reports whether s is non-empty and made entirely of kana.
func IsKanaOnly(s string) bool {
	return s != "" && !ContainsNonKana(s)
}

// IsKanji reports whether r is a CJK unified ideograph or the kanji
// repetition mark 々.
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || r == '々'
}

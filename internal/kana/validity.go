package kana

// yoonBases are the kana a small ゃ, ゅ or ょ may follow.
var yoonBases = map[rune]bool{
	'き': true, 'ぎ': true, 'し': true, 'じ': true, 'ち': true, 'ぢ': true,
	'に': true, 'ひ': true, 'び': true, 'ぴ': true, 'み': true, 'り': true,
	'ふ': true, 'ゔ': true, 'て': true, 'で': true,
}

// HasImpossibleSequence reports whether s contains a kana sequence that
// cannot occur in a Japanese reading: a reading starting with ん, ー or a
// small kana, a doubled ん, a small kana after a kana it cannot modify, or
// a small っ in front of a vowel, ん, ー or another small kana. Non-kana
// characters are ignored.
func HasImpossibleSequence(s string) bool {
	var runes []rune
	for _, r := range ToHiragana(s) {
		if IsKana(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return false
	}

	first := runes[0]
	if first == 'ん' || first == ProlongedSoundMark || IsSmall(first) {
		return true
	}

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case prev == 'ん' && cur == 'ん':
			return true
		case IsSmallY(cur) && !yoonBases[prev]:
			return true
		case IsSmall(cur) && cur != 'っ' && (IsSmall(prev) || prev == 'ん' || prev == ProlongedSoundMark):
			return true
		case prev == 'っ' && (isVowel(cur) || cur == 'ん' || cur == ProlongedSoundMark || IsSmall(cur)):
			return true
		}
	}
	return false
}

func isVowel(r rune) bool {
	return r == 'あ' || r == 'い' || r == 'う' || r == 'え' || r == 'お'
}

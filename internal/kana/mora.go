package kana

// Split divides a kana string into morae. A small っ is kept together with
// the kana it doubles, and a kana followed by a small ゃ, ゅ or ょ forms a
// single mora. A following small vowel joins its base only when the pair
// is a known digraph such as ふぁ or てぃ. Katakana is converted to
// hiragana first; characters outside the kana scripts become morae of
// their own.
func Split(s string) []string {
	runes := []rune(ToHiragana(s))
	morae := make([]string, 0, len(runes))

	for i := 0; i < len(runes); {
		start := i
		if runes[i] == 'っ' && i+1 < len(runes) && !IsSmall(runes[i+1]) && runes[i+1] != ProlongedSoundMark {
			i++
		}
		base := i
		i++

		if i < len(runes) && IsSmall(runes[i]) && runes[i] != 'っ' {
			pair := string(runes[base : i+1])
			if _, ok := romaji[pair]; ok || IsSmallY(runes[i]) {
				i++
			}
		}
		morae = append(morae, string(runes[start:i]))
	}
	return morae
}

// Vowel returns the vowel a mora ends on, as hiragana. ok is false for
// morae that have no vowel, such as ん and ー.
func Vowel(mora string) (vowel rune, ok bool) {
	r := romanizeMora(mora)
	if r == "" {
		return 0, false
	}
	vowel, ok = vowels[r[len(r)-1]]
	return vowel, ok
}

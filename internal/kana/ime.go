package kana

import (
	"strings"
	"unicode/utf8"
)

// ToIME suggests the romaji a learner should type into an IME to produce
// reading. ん always becomes "nn" and ー becomes "-". Characters that are
// not kana are copied unchanged.
func ToIME(reading string) string {
	var b strings.Builder
	for _, m := range Split(reading) {
		b.WriteString(romanizeMora(m))
	}
	return b.String()
}

// romanizeMora returns the IME input for a single mora.
func romanizeMora(m string) string {
	if r, ok := romaji[m]; ok {
		return r
	}

	first, size := utf8.DecodeRuneInString(m)
	if first == 'っ' && size < len(m) {
		rest := romanizeMora(m[size:])
		if rest != "" && isDoublable(rest[0]) {
			return rest[:1] + rest
		}
		return romaji["っ"] + rest
	}

	// Unknown combination: romanize rune by rune.
	var b strings.Builder
	for _, r := range m {
		if s, ok := romaji[string(r)]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isDoublable reports whether c is a consonant an IME doubles into っ.
func isDoublable(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	_, vowel := vowels[c]
	return !vowel && c != 'n' && c != 'x'
}

// FromRomaji converts romaji to hiragana the way a romaji IME would.
// A doubled consonant (or "t" before "ch") becomes っ, "nn" becomes ん,
// a lone "n" before a consonant or at the end becomes ん, and "-"
// becomes ー. Anything that is not recognised is copied unchanged.
func FromRomaji(s string) string {
	return convertRomaji(s, false)
}

// FromHepburn converts romaji written the way it is printed rather than
// typed. It differs from FromRomaji only for "nn" before a vowel or "y",
// which is ん followed by a な-row kana: "konnichiha" is こんにちは and
// "onna" is おんな.
func FromHepburn(s string) string {
	return convertRomaji(s, true)
}

func convertRomaji(s string, hepburn bool) string {
	s = strings.ToLower(s)

	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c == '-' {
			b.WriteRune(ProlongedSoundMark)
			i++
			continue
		}
		if i+1 < len(s) && (c == s[i+1] && isDoublable(c) || c == 't' && strings.HasPrefix(s[i+1:], "ch")) {
			b.WriteRune('っ')
			i++
			continue
		}
		if hepburn && c == 'n' && i+2 < len(s) && s[i+1] == 'n' && startsMora(s[i+2]) {
			b.WriteRune('ん')
			i++
			continue
		}

		matched := false
		for l := min(maxRomajiLen, len(s)-i); l > 0; l-- {
			if k, ok := fromRomaji[s[i:i+l]]; ok {
				b.WriteString(k)
				i += l
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// startsMora reports whether c can follow "n" to form a な-row kana.
func startsMora(c byte) bool {
	_, vowel := vowels[c]
	return vowel || c == 'y'
}

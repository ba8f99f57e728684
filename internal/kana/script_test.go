package kana

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestScriptClassification(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		containsKana bool
		nonKana      bool
		kanaOnly     bool
	}{
		{"hiragana", "みず", true, false, true},
		{"katakana", "ラーメン", true, false, true},
		{"mixed kana scripts", "らーメン", true, false, true},
		{"latin", "water", false, true, false},
		{"kanji", "水", false, true, false},
		{"kanji with okurigana", "上る", true, true, false},
		{"trailing n", "ほn", true, true, false},
		{"space between kana", "み ず", true, true, false},
		{"empty", "", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.containsKana, ContainsKana(tt.input), "ContainsKana")
			assert.Equal(t, tt.nonKana, ContainsNonKana(tt.input), "ContainsNonKana")
			assert.Equal(t, tt.kanaOnly, IsKanaOnly(tt.input), "IsKanaOnly")
		})
	}
}

func TestIsKanji(t *testing.T) {
	assert.True(t, IsKanji('水'))
	assert.True(t, IsKanji('々'))
	assert.False(t, IsKanji('み'))
	assert.False(t, IsKanji('a'))
}

func TestToHiragana(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ラーメン", "らーめん"},
		{"キョウ", "きょう"},
		{"ヴァ", "ゔぁ"},
		{"みず", "みず"},
		{"water", "water"},
		{"\u30AB\u3099", "が"}, // decomposed voicing mark
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHiragana(tt.input), "ToHiragana(%q)", tt.input)
	}
}

func TestFullSize(t *testing.T) {
	full, ok := FullSize('ょ')
	assert.True(t, ok)
	assert.Equal(t, 'よ', full)

	_, ok = FullSize('よ')
	assert.False(t, ok)
}

func TestToHiragana_KatakanaBecomesKanaOnly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.RuneFrom(nil, &unicodeKatakana), 1, 12).Draw(t, "katakana")
		got := ToHiragana(string(runes))
		if !IsKanaOnly(got) {
			t.Fatalf("ToHiragana(%q) = %q, not kana-only", string(runes), got)
		}
		for _, r := range got {
			if IsKatakana(r) {
				t.Fatalf("ToHiragana(%q) = %q still has katakana %q", string(runes), got, r)
			}
		}
	})
}

var unicodeKatakana = unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x30A1, Hi: 0x30F6, Stride: 1}},
}

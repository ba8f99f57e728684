package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Water ", "water"},
		{"Mt. Fuji", "mt fuji"},
		{"one-sided", "one sided"},
		{"don't", "dont"},
		{"don’t", "dont"},
		{"and/or", "andor"},
		{"ratio: 1,000", "ratio 1000"},
		{"ＷＡＴＥＲ", "water"},
		{"ｶﾀｶﾅ", "カタカナ"},
		{"end-", "end"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeString(tt.input), "NormalizeString(%q)", tt.input)
	}
}

func TestNormalizeString_Idempotent(t *testing.T) {
	alphabet := []rune("abcXYZ 019-.,'’/:　ＡＢｶ")
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringOf(rapid.SampledFrom(alphabet)).Draw(t, "s")
		once := NormalizeString(s)
		if twice := NormalizeString(once); twice != once {
			t.Fatalf("NormalizeString(%q) = %q, normalizing again gave %q", s, once, twice)
		}
	})
}

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, []string{"2"}, ExtractDigits("2 days"))
	assert.Equal(t, []string{"10", "3"}, ExtractDigits("10 to 3"))
	assert.Empty(t, ExtractDigits("days"))
}

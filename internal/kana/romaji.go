package kana

// romaji is the preferred IME input for each hiragana mora. Entries are
// chosen so that typing them into a standard romaji IME produces exactly
// the kana on the left, which is why ぢ is "di" and ん is "nn".
var romaji = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"だ": "da", "ぢ": "di", "づ": "du", "で": "de", "ど": "do",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "wyi", "ゑ": "wye", "を": "wo",
	"ん": "nn", "ゔ": "vu", "ー": "-",

	"ぁ": "xa", "ぃ": "xi", "ぅ": "xu", "ぇ": "xe", "ぉ": "xo",
	"ゃ": "xya", "ゅ": "xyu", "ょ": "xyo", "っ": "xtu", "ゎ": "xwa",
	"ゕ": "xka", "ゖ": "xke",

	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"ぢゃ": "dya", "ぢゅ": "dyu", "ぢょ": "dyo",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"てゅ": "thu", "でゅ": "dhu",

	"ふぁ": "fa", "ふぃ": "fi", "ふぇ": "fe", "ふぉ": "fo",
	"てぃ": "thi", "でぃ": "dhi",
	"とぅ": "twu", "どぅ": "dwu",
	"うぃ": "wi", "うぇ": "we", "うぉ": "who",
	"いぇ": "ye",
	"しぇ": "she", "じぇ": "je", "ちぇ": "che",
	"つぁ": "tsa", "つぃ": "tsi", "つぇ": "tse", "つぉ": "tso",
	"ゔぁ": "va", "ゔぃ": "vi", "ゔぇ": "ve", "ゔぉ": "vo",
}

// aliases are alternative spellings accepted when reading romaji back.
var aliases = map[string]string{
	"si": "し", "ti": "ち", "tu": "つ", "hu": "ふ", "zi": "じ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"zya": "じゃ", "zyu": "じゅ", "zyo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"cya": "ちゃ", "cyu": "ちゅ", "cyo": "ちょ",
	"la": "ぁ", "li": "ぃ", "lu": "ぅ", "le": "ぇ", "lo": "ぉ",
	"lya": "ゃ", "lyu": "ゅ", "lyo": "ょ",
	"ltu": "っ", "ltsu": "っ", "xtsu": "っ",
	"n": "ん",
}

// fromRomaji is the inverse of romaji plus aliases, keyed by romaji.
var fromRomaji = func() map[string]string {
	m := make(map[string]string, len(romaji)+len(aliases))
	for k, v := range romaji {
		m[v] = k
	}
	for k, v := range aliases {
		m[k] = v
	}
	return m
}()

// maxRomajiLen is the longest key in fromRomaji.
const maxRomajiLen = 4

// vowels maps a romaji vowel to its hiragana.
var vowels = map[byte]rune{
	'a': 'あ',
	'i': 'い',
	'u': 'う',
	'e': 'え',
	'o': 'お',
}

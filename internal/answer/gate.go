package answer

import (
	"strings"

	"github.com/abhisek/kotoba/internal/kana"
)

// QuestionTypeAndResponseMatch reports whether a response is written in the
// script the task expects: kana for readings, no kana at all for meanings.
// A single trailing "n" is allowed in a reading because an IME leaves it
// unconverted until the next key. Callers show a warning instead of
// checking the answer when this returns false.
func QuestionTypeAndResponseMatch(task TaskType, response string) bool {
	switch task {
	case TaskReading:
		return !kana.ContainsNonKana(strings.TrimSuffix(response, "n"))
	case TaskMeaning:
		return !kana.ContainsKana(response)
	default:
		return false
	}
}

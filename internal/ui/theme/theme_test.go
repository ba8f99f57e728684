package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/kotoba/internal/answer"
)

func TestRenderVerdict(t *testing.T) {
	tests := []struct {
		result answer.Result
		want   []string
	}{
		{answer.Result{Status: answer.StatusCorrect}, []string{"correct"}},
		{answer.Result{Status: answer.StatusIncorrect, Message: "Need help?"}, []string{"incorrect", "Need help?"}},
		{answer.Result{Status: answer.StatusHint, Message: "That looks like a typo."}, []string{"try again", "That looks like a typo."}},
		{answer.Result{Status: answer.StatusCorrectWithHint, Message: "a bit off"}, []string{"almost", "a bit off"}},
	}

	for _, tt := range tests {
		got := RenderVerdict(tt.result)
		for _, w := range tt.want {
			assert.Contains(t, got, w, "RenderVerdict(%+v)", tt.result)
		}
	}
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, Retry, StatusStyle(answer.StatusHint))
	assert.Equal(t, Incorrect, StatusStyle(answer.Status("unknown")))
}

func TestRenderWarning(t *testing.T) {
	assert.Contains(t, RenderWarning("type in kana"), "type in kana")
}

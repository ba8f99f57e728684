package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/answer"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#EAB308") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Prompt = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Verdicts
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	CorrectWithHint = lipgloss.NewStyle().
			Foreground(Success)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Retry = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// verdictLabels are shown in front of a verdict's message.
var verdictLabels = map[answer.Status]string{
	answer.StatusCorrect:         "✓ correct",
	answer.StatusCorrectWithHint: "✓ almost",
	answer.StatusIncorrect:       "✗ incorrect",
	answer.StatusHint:            "↻ try again",
}

// StatusStyle returns the style a verdict is rendered with.
func StatusStyle(s answer.Status) lipgloss.Style {
	switch s {
	case answer.StatusCorrect:
		return Correct
	case answer.StatusCorrectWithHint:
		return CorrectWithHint
	case answer.StatusHint:
		return Retry
	default:
		return Incorrect
	}
}

// RenderVerdict formats a checker result as a single line.
func RenderVerdict(r answer.Result) string {
	label, ok := verdictLabels[r.Status]
	if !ok {
		label = string(r.Status)
	}
	out := StatusStyle(r.Status).Render(label)
	if r.Message != "" {
		out += "  " + Body.Render(r.Message)
	}
	return out
}

// RenderWarning formats a message shown instead of a verdict, e.g. when
// the answer is written in the wrong script.
func RenderWarning(msg string) string {
	return Retry.Render("! warning") + "  " + Hint.Render(msg)
}

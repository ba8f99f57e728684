package cmd

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kotoba/internal/answer"
	"github.com/abhisek/kotoba/internal/store"
	"github.com/abhisek/kotoba/internal/subject"
)

func testDeck() *subject.Deck {
	water := &subject.Vocabulary{
		Common: subject.Common{
			ID:         2500,
			Characters: "水",
			Meanings:   []subject.Meaning{{Meaning: "Water", Primary: true, AcceptedAnswer: true}},
		},
		Readings: []subject.Reading{{Reading: "みず", Primary: true, AcceptedAnswer: true}},
	}
	morning := &subject.KanaVocabulary{
		Common: subject.Common{
			ID:         9001,
			Characters: "おはよう",
			Meanings:   []subject.Meaning{{Meaning: "Good Morning", Primary: true, AcceptedAnswer: true}},
		},
	}
	return subject.NewDeck([]*subject.Enriched{{Subject: water}, {Subject: morning}})
}

func newTestPractice(t *testing.T, input string) (*practice, *bytes.Buffer, store.AnswerRepo) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	var out bytes.Buffer
	repo := s.AnswerRepo()
	return &practice{
		checker:   answer.New(answer.DefaultConfig()),
		answers:   repo,
		sessionID: "session-1",
		in:        bufio.NewScanner(strings.NewReader(input)),
		out:       &out,
	}, &out, repo
}

func TestPractice_Run(t *testing.T) {
	// Hint on the first reading, then correct; wrong script is re-asked.
	input := strings.Join([]string{
		"water",
		"mizu",
		"みづ",
		"おはよう",
		"good morning",
	}, "\n")
	p, out, repo := newTestPractice(t, input)
	ctx := context.Background()

	require.NoError(t, p.run(ctx, testDeck().Entries))

	events, err := repo.Recent(ctx, store.QueryOpts{SessionID: "session-1"})
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Newest first.
	assert.Equal(t, "meaning", events[0].TaskType)
	assert.Equal(t, 9001, events[0].SubjectID)
	assert.Equal(t, "correct", events[0].Status)
	assert.Equal(t, "reading", events[1].TaskType)
	assert.Equal(t, "incorrect", events[1].Status)
	assert.Equal(t, "correct", events[2].Status)

	text := out.String()
	assert.Contains(t, text, "We want the reading in kana")
	assert.Contains(t, text, "Answer: みず")
	assert.Contains(t, text, "2/3 correct")
}

func TestPractice_HintKeepsTaskPending(t *testing.T) {
	deck := subject.NewDeck([]*subject.Enriched{{Subject: &subject.Vocabulary{
		Common: subject.Common{
			ID:         3000,
			Characters: "今日",
			Meanings:   []subject.Meaning{{Meaning: "Today", Primary: true, AcceptedAnswer: true}},
		},
		Readings: []subject.Reading{{Reading: "きょう", Primary: true, AcceptedAnswer: true}},
	}}})

	p, out, repo := newTestPractice(t, "today\nきよう\nきょう\n")
	ctx := context.Background()
	require.NoError(t, p.run(ctx, deck.Entries))

	events, err := repo.Recent(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "きょう", events[0].Response)
	assert.Equal(t, "correct", events[0].Status)
	assert.Equal(t, "きよう", events[1].Response)
	assert.Equal(t, "hint", events[1].Status)
	assert.Equal(t, "check-small-hiragana", events[1].Plugin)

	text := out.String()
	assert.Contains(t, text, "Watch out for the small ょ")
	assert.Contains(t, text, "2/2 correct")

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ByStatus["hint"])
	assert.Equal(t, "check-small-hiragana", stats.TopHintPlugin)
	assert.Equal(t, 1, stats.TopHintCount)
}

func TestPractice_InputClosed(t *testing.T) {
	p, out, repo := newTestPractice(t, "water\n")
	ctx := context.Background()
	require.NoError(t, p.run(ctx, testDeck().Entries))

	events, err := repo.Recent(ctx, store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestSelectEntries(t *testing.T) {
	deck := testDeck()
	assert.Len(t, selectEntries(deck, 0, 0), 2)
	assert.Len(t, selectEntries(deck, 0, 1), 1)

	from := selectEntries(deck, 9001, 0)
	require.Len(t, from, 1)
	assert.Equal(t, 9001, from[0].Subject.Base().ID)
}

func TestTasksFor(t *testing.T) {
	deck := testDeck()
	assert.Equal(t, []answer.TaskType{answer.TaskMeaning, answer.TaskReading}, tasksFor(deck.Entries[0].Subject))
	assert.Equal(t, []answer.TaskType{answer.TaskMeaning}, tasksFor(deck.Entries[1].Subject))
}

func TestParseTask(t *testing.T) {
	task, err := parseTask("Reading")
	require.NoError(t, err)
	assert.Equal(t, answer.TaskReading, task)

	_, err = parseTask("audio")
	assert.Error(t, err)
}

func TestCheckOne_Gate(t *testing.T) {
	e := testDeck().Entries[0]
	_, checked := checkOne(answer.New(answer.DefaultConfig()), e, answer.TaskMeaning, "みず")
	assert.False(t, checked)

	r, checked := checkOne(answer.New(answer.DefaultConfig()), e, answer.TaskMeaning, "water")
	assert.True(t, checked)
	assert.Equal(t, answer.StatusCorrect, r.Status)
}

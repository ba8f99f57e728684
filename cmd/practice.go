package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/answer"
	"github.com/abhisek/kotoba/internal/store"
	"github.com/abhisek/kotoba/internal/subject"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer deck subjects interactively",
	Long: `Ask for the meaning and reading of each subject in the deck and check every answer.

A hint asks the same question again. Every other verdict is final and is
recorded in the answer log. Enter an empty line to skip a question.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().Int("count", 0, "Number of subjects to practise (0 = whole deck)")
	practiceCmd.Flags().Int("start", 0, "Subject ID to start from")
}

func runPractice(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	start, _ := cmd.Flags().GetInt("start")

	deck, err := loadDeck()
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	entries := selectEntries(deck, start, count)
	if len(entries) == 0 {
		return fmt.Errorf("no subjects to practise")
	}

	p := &practice{
		checker:   newChecker(),
		answers:   s.AnswerRepo(),
		sessionID: store.NewSessionID(),
		in:        bufio.NewScanner(cmd.InOrStdin()),
		out:       cmd.OutOrStdout(),
	}
	log.Info().Str("session", p.sessionID).Int("subjects", len(entries)).Msg("practice started")
	return p.run(cmd.Context(), entries)
}

// selectEntries returns up to count entries starting at the subject with
// ID start, or from the beginning if start is 0 or not in the deck.
func selectEntries(deck *subject.Deck, start, count int) []*subject.Enriched {
	entries := deck.Entries
	for i, e := range entries {
		if e.Subject.Base().ID == start {
			entries = entries[i:]
			break
		}
	}
	if count > 0 && count < len(entries) {
		entries = entries[:count]
	}
	return entries
}

// practice is one interactive session.
type practice struct {
	checker   *answer.Checker
	answers   store.AnswerRepo
	sessionID string
	in        *bufio.Scanner
	out       io.Writer

	asked   int
	correct int
}

var prompts = map[answer.TaskType]string{
	answer.TaskMeaning: "Meaning: ",
	answer.TaskReading: "Reading: ",
}

// tasksFor returns the tasks asked for a subject. Radicals and kana-only
// vocabulary have no reading to ask for.
func tasksFor(s subject.Subject) []answer.TaskType {
	if _, ok := subject.ReadingsOf(s); ok {
		return []answer.TaskType{answer.TaskMeaning, answer.TaskReading}
	}
	return []answer.TaskType{answer.TaskMeaning}
}

func (p *practice) run(ctx context.Context, entries []*subject.Enriched) error {
	for i, e := range entries {
		base := e.Subject.Base()
		fmt.Fprintf(p.out, "── %d/%d ── %s %s\n", i+1, len(entries),
			theme.Title.Render(base.Characters), theme.Hint.Render(e.Subject.Kind().Label()))

		for _, task := range tasksFor(e.Subject) {
			done, err := p.ask(ctx, e, task)
			if err != nil {
				return err
			}
			if !done {
				p.summary()
				return nil
			}
		}
		fmt.Fprintln(p.out)
	}
	p.summary()
	return nil
}

// ask repeats a question until the learner gets a final verdict, skips it
// or closes the input. done is false when the input is closed.
func (p *practice) ask(ctx context.Context, e *subject.Enriched, task answer.TaskType) (done bool, err error) {
	for {
		fmt.Fprint(p.out, theme.Prompt.Render(prompts[task]))
		if !p.in.Scan() {
			fmt.Fprintln(p.out, "\n(input closed)")
			return false, nil
		}
		response := strings.TrimSpace(p.in.Text())
		if response == "" {
			fmt.Fprintln(p.out, theme.Hint.Render("(skipped)"))
			return true, nil
		}

		result, checked := checkOne(p.checker, e, task, response)
		printOutcome(p.out, task, result, checked)
		if !checked {
			continue
		}

		// Hints are recorded too so stats can tell which plugin fires most,
		// but only final verdicts count towards the session score.
		if err := p.answers.Append(ctx, &store.AnswerEvent{
			SessionID:   p.sessionID,
			SubjectID:   e.Subject.Base().ID,
			SubjectKind: string(e.Subject.Kind()),
			TaskType:    string(task),
			Response:    response,
			Status:      string(result.Status),
			Plugin:      result.Plugin,
		}); err != nil {
			return false, fmt.Errorf("record answer: %w", err)
		}
		if !result.Status.Finalizes() {
			continue
		}

		p.asked++
		if result.Status == answer.StatusCorrect || result.Status == answer.StatusCorrectWithHint {
			p.correct++
		}
		if result.Status == answer.StatusIncorrect {
			fmt.Fprintln(p.out, theme.Hint.Render("Answer: "+expectedAnswer(e.Subject, task)))
		}
		return true, nil
	}
}

func expectedAnswer(s subject.Subject, task answer.TaskType) string {
	if task == answer.TaskMeaning {
		return subject.PrimaryMeaning(s)
	}
	readings, _ := subject.ReadingsOf(s)
	return strings.Join(subject.AcceptedReadings(readings), ", ")
}

func (p *practice) summary() {
	fmt.Fprintf(p.out, "── Summary: %d/%d correct ──\n", p.correct, p.asked)
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/answer"
	"github.com/abhisek/kotoba/internal/subject"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check ANSWER",
	Short: "Check one answer against a deck subject",
	Long: `Check a single meaning or reading answer for the subject with the given ID.

Answers written in the wrong script (kana for a meaning, Latin letters for a
reading) print a warning instead of a verdict.`,
	Example: `  kotoba check --id 440 --task meaning one
  kotoba check --id 440 --task reading いち`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("id", 0, "Subject ID (required)")
	checkCmd.Flags().String("task", string(answer.TaskMeaning), "Task type: meaning or reading")
	_ = checkCmd.MarkFlagRequired("id")
}

func runCheck(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")
	taskVal, _ := cmd.Flags().GetString("task")

	task, err := parseTask(taskVal)
	if err != nil {
		return err
	}

	deck, err := loadDeck()
	if err != nil {
		return err
	}
	e, ok := deck.Find(id)
	if !ok {
		return fmt.Errorf("no subject with id %d in %s", id, cfg.Deck)
	}

	result, checked := checkOne(newChecker(), e, task, strings.Join(args, " "))
	printOutcome(cmd.OutOrStdout(), task, result, checked)
	return nil
}

func parseTask(val string) (answer.TaskType, error) {
	switch t := answer.TaskType(strings.ToLower(val)); t {
	case answer.TaskMeaning, answer.TaskReading:
		return t, nil
	default:
		return "", fmt.Errorf("invalid task %q: must be meaning or reading", val)
	}
}

// checkOne runs the script gate and, if it passes, the checker. checked is
// false when the answer was rejected by the gate.
func checkOne(c *answer.Checker, e *subject.Enriched, task answer.TaskType, response string) (answer.Result, bool) {
	if !answer.QuestionTypeAndResponseMatch(task, response) {
		return answer.Result{}, false
	}

	warnDataProblems(e.Subject)
	result := c.CheckAnswer(answer.Params{
		TaskType:     task,
		Input:        response,
		Subject:      e,
		UserSynonyms: e.Synonyms(),
	})
	log.Debug().
		Int("subject", e.Subject.Base().ID).
		Str("task", string(task)).
		Str("status", string(result.Status)).
		Str("plugin", result.Plugin).
		Msg("answer checked")
	return result, true
}

func printOutcome(w io.Writer, task answer.TaskType, result answer.Result, checked bool) {
	if !checked {
		fmt.Fprintln(w, theme.RenderWarning(scriptWarning(task)))
		return
	}
	fmt.Fprintln(w, theme.RenderVerdict(result))
}

func scriptWarning(task answer.TaskType) string {
	if task == answer.TaskReading {
		return "We want the reading in kana. Switch your keyboard to Japanese and try again."
	}
	return "We want the meaning in English. Switch your keyboard back and try again."
}

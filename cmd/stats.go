package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/answer"
	"github.com/abhisek/kotoba/internal/store"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.AnswerRepo().Stats(cmd.Context())
		if errors.Is(err, store.ErrNoAnswers) {
			fmt.Fprintln(cmd.OutOrStdout(), "No answers recorded yet. Run `kotoba practice` first.")
			return nil
		}
		if err != nil {
			return err
		}
		printStats(cmd, stats)
		return nil
	},
}

func printStats(cmd *cobra.Command, stats *store.Stats) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("%d answers", stats.Total)))

	order := []answer.Status{answer.StatusCorrect, answer.StatusCorrectWithHint, answer.StatusIncorrect, answer.StatusHint}
	for _, st := range order {
		fmt.Fprintf(w, "  %s %d\n", theme.StatusStyle(st).Render(fmt.Sprintf("%-16s", st)), stats.ByStatus[string(st)])
	}

	// Statuses written by older versions.
	var other []string
	for st := range stats.ByStatus {
		if !slices.Contains(order, answer.Status(st)) {
			other = append(other, st)
		}
	}
	slices.Sort(other)
	for _, st := range other {
		fmt.Fprintf(w, "  %-16s %d\n", st, stats.ByStatus[st])
	}

	if stats.TopHintPlugin != "" {
		fmt.Fprintf(w, "Most hints: %s (%d)\n", stats.TopHintPlugin, stats.TopHintCount)
	}
}

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "Delete all recorded answers? [y/N] ")
			in := bufio.NewScanner(cmd.InOrStdin())
			if !in.Scan() || !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.AnswerRepo().Truncate(cmd.Context())
		if err != nil {
			return err
		}
		log.Info().Int64("answers", n).Msg("answer log reset")
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d answers.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

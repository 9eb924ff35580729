package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the quiz questions in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if wantJSON(cmd) {
				return printJSON(out, cat.Questions())
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "#\tAXIS\tPROMPT\tA\tB")
			for _, q := range cat.Questions() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", q.ID, q.Trait, q.Prompt, q.OptionA, q.OptionB)
			}
			return tw.Flush()
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"fontquiz/internal/model"
	"fontquiz/internal/scoring"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recommend --answers ABBAABABBA",
		Short:   "Score a full answer set and print the recommendation",
		Example: "  quizctl recommend --answers AAABAAAABA",
		Args:    cobra.NoArgs,
		RunE:    runRecommend,
	}
	cmd.Flags().StringP("answers", "a", "", "one A/B letter per question, in order")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	answers, _ := cmd.Flags().GetString("answers")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	res, err := scoring.NewEngine(cat, zap.NewNop()).Recommend(answers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if wantJSON(cmd) {
		return printJSON(out, res)
	}

	rec := res.Recommendation
	fmt.Fprintf(out, "Style: %s (%s)\n", rec.StyleLabel, rec.Style)
	fmt.Fprintf(out, "Coarse: %s\n", vectorString(res.Coarse))
	fmt.Fprintf(out, "Display: %s\n\n", vectorString(res.Display))

	tw := newTable(out)
	fmt.Fprintln(tw, "AXIS\tSCORE\tLEANS")
	for _, t := range model.AllTraits {
		info := cat.TraitInfo(t)
		score := res.Display.Get(t)
		lean := info.LowPole
		if score > 3 {
			lean = info.HighPole
		} else if score == 3 {
			lean = "balanced"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", info.Label, score, strings.ToLower(lean))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fonts := rec.Fonts()
	return printFonts(out, fonts[:], "#\tFONT\tTAG\tTRAITS\tURL")
}

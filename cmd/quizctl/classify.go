package main

import (
	"fmt"
	"strconv"
	"strings"

	"fontquiz/internal/model"
	"fontquiz/internal/scoring"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify --vector 1,1,1,5,1",
		Short: "Classify a coarse trait vector and rank fonts for it",
		Long: `Classify takes five scores in tone,energy,design,era,structure order,
each between 1 and 5, and prints the chosen style with the per-style match
counts. The same vector is used as the display profile for ranking.`,
		Args: cobra.NoArgs,
		RunE: runClassify,
	}
	cmd.Flags().StringP("vector", "v", "", "five comma-separated scores")
	_ = cmd.MarkFlagRequired("vector")
	return cmd
}

type classifyOutput struct {
	Vector         model.TraitVector    `json:"vector"`
	Matches        []scoring.StyleMatch `json:"matches"`
	Recommendation model.Recommendation `json:"recommendation"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("vector")
	v, err := parseVector(raw)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	engine := scoring.NewEngine(cat, zap.NewNop())
	style := scoring.Classify(v, cat.Ranges())

	res := classifyOutput{
		Vector:         v,
		Matches:        scoring.MatchCounts(v, cat.Ranges()),
		Recommendation: engine.Ranker().Rank(style, v),
	}

	out := cmd.OutOrStdout()
	if wantJSON(cmd) {
		return printJSON(out, res)
	}

	fmt.Fprintf(out, "Style: %s (%s)\n", res.Recommendation.StyleLabel, style)
	if scoring.IsEditorialProfile(v) {
		fmt.Fprintln(out, "Editorial rule matched")
	}
	fmt.Fprintln(out)

	tw := newTable(out)
	fmt.Fprintln(tw, "STYLE\tMATCHES")
	for _, m := range res.Matches {
		fmt.Fprintf(tw, "%s\t%d/%d\n", m.Style, m.Matches, len(model.AllTraits))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fonts := res.Recommendation.Fonts()
	return printFonts(out, fonts[:], "#\tFONT\tTAG\tTRAITS\tURL")
}

func parseVector(s string) (model.TraitVector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(model.AllTraits) {
		return model.TraitVector{}, fmt.Errorf("vector needs %d scores, got %d", len(model.AllTraits), len(parts))
	}
	var values [5]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.TraitVector{}, fmt.Errorf("invalid %s score %q: %w", model.AllTraits[i], p, err)
		}
		values[i] = n
	}
	v := model.NewTraitVector(values)
	if !v.InRange() {
		return model.TraitVector{}, fmt.Errorf("scores must be between %d and %d: %s", model.MinScore, model.MaxScore, v)
	}
	return v, nil
}

// Command quizctl runs the font quiz scoring offline against the embedded
// catalog: answer strings, raw trait vectors and catalog listings.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "quizctl",
		Short:        "Font quiz toolbox",
		Long:         `quizctl scores answer sets, classifies trait vectors and browses the font catalog`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "print JSON instead of tables")

	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newQuestionsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

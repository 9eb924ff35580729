package main

import (
	"fmt"

	"fontquiz/internal/model"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List styles, or the fonts of one style",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}
	cmd.Flags().StringP("style", "s", "", "style to list fonts for, e.g. slab-serif")
	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	name, _ := cmd.Flags().GetString("style")
	if name == "" {
		if wantJSON(cmd) {
			return printJSON(out, cat.Styles())
		}
		tw := newTable(out)
		fmt.Fprintln(tw, "STYLE\tLABEL\tFONTS")
		for _, s := range cat.Styles() {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Style, s.Label, len(cat.FontsByStyle(s.Style)))
		}
		return tw.Flush()
	}

	style, err := model.ParseStyle(name)
	if err != nil {
		return err
	}
	fonts := cat.FontsByStyle(style)
	if wantJSON(cmd) {
		return printJSON(out, fonts)
	}
	fmt.Fprintf(out, "%s: %s\n\n", cat.StyleInfo(style).Label, cat.StyleInfo(style).Description)
	return printFonts(out, fonts, "#\tFONT\tTAG\tTRAITS\tURL")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deliberate/internal/patterns"
	"deliberate/internal/ui/theme"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the pattern vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		signals, _ := cmd.Flags().GetBool("signals")

		byCategory := make(map[patterns.Category][]patterns.Pattern)
		for _, p := range patterns.All() {
			byCategory[p.Category] = append(byCategory[p.Category], p)
		}

		for _, c := range patterns.Categories() {
			group := byCategory[c]
			if len(group) == 0 {
				continue
			}
			fmt.Println(theme.Title.Render(string(c)))
			for _, p := range group {
				fmt.Printf("  %-22s %s\n", theme.Highlight.Render(p.ID), p.Description)
				if signals && len(p.KeySignals) > 0 {
					fmt.Println("    " + theme.Hint.Render("Signals: "+strings.Join(p.KeySignals, "; ")))
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	patternsCmd.Flags().Bool("signals", false, "Show the recognition signals for each pattern")
}

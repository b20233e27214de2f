package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"deliberate/internal/patterns"
	"deliberate/internal/problems"
	"deliberate/internal/ui/theme"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List the built-in problem catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")

		fmt.Println(theme.Label.Render(fmt.Sprintf("%-34s  %-8s  %s", "ID", "Level", "Canonical pattern")))
		for _, p := range problems.All() {
			if difficulty != "" && string(p.Difficulty) != difficulty {
				continue
			}
			pattern := "-"
			if len(p.Patterns) > 0 {
				pattern = patterns.DisplayName(p.Patterns[0])
			}
			fmt.Printf("%-34s  %-8s  %s\n", p.ID, p.Difficulty, pattern)
		}
		return nil
	},
}

func init() {
	problemsCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, hard)")
}

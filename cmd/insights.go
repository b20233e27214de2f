package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deliberate/internal/patterns"
	"deliberate/internal/ui/theme"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "See which patterns you lean on and how your confidence tracks reality",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}

		svc := newService(cmd, s, false)
		ctx := context.Background()

		usage, err := svc.Usage(ctx, userID)
		if err != nil {
			return err
		}
		cal, err := svc.Calibration(ctx, userID)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Pattern Usage"))
		fmt.Println(strings.Repeat("─", 60))

		if len(usage.Defaults) == 0 && len(usage.Decaying) == 0 && len(usage.Avoided) == 0 {
			fmt.Println(theme.Subtitle.Render("Not enough solved attempts yet. Keep practicing."))
		}

		if len(usage.Defaults) > 0 {
			fmt.Println(theme.Highlight.Render("Default choices"))
			for _, d := range usage.Defaults {
				line := fmt.Sprintf("  %-22s %d uses (%.0f%% of attempts)",
					patterns.DisplayName(d.Pattern), d.TimesChosen, d.PercentageOfTotal)
				if d.ConsecutiveRecent >= 2 {
					line += theme.Warn.Render(fmt.Sprintf("  last %d in a row", d.ConsecutiveRecent))
				}
				fmt.Println(line)
			}
			fmt.Println()
		}

		if len(usage.Decaying) > 0 {
			fmt.Println(theme.Highlight.Render("Decaying"))
			for _, d := range usage.Decaying {
				fmt.Printf("  %-22s last used %d days ago\n",
					patterns.DisplayName(d.Pattern), d.DaysSinceLastUse)
			}
			fmt.Println()
		}

		if len(usage.Avoided) > 0 {
			fmt.Println(theme.Highlight.Render("Avoided"))
			for _, a := range usage.Avoided {
				fmt.Printf("  %-22s right answer %d times, you picked it %d\n",
					patterns.DisplayName(a.Pattern), a.TimesCorrectAnswer, a.TimesUserChoseIt)
			}
			fmt.Println()
		}

		fmt.Println(theme.Title.Render("Confidence Calibration"))
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("  %-16s %9s %9s %10s\n", "Confidence", "Attempts", "Correct", "Accuracy")
		for _, lv := range cal.Levels {
			acc := "-"
			if lv.Total > 0 {
				acc = fmt.Sprintf("%.0f%%", lv.CorrectPercentage)
			}
			fmt.Printf("  %-16s %9d %9d %10s\n", lv.Level, lv.Total, lv.Correct, acc)
		}

		if len(cal.Overconfident) > 0 {
			fmt.Println()
			fmt.Println(theme.Bad.Render("Overconfident on"))
			for _, w := range cal.Overconfident {
				fmt.Println("  " + w.Insight)
			}
		}
		if len(cal.Fragile) > 0 {
			fmt.Println()
			fmt.Println(theme.Warn.Render("Better than you think at"))
			for _, w := range cal.Fragile {
				fmt.Println("  " + w.Insight)
			}
		}
		return nil
	},
}

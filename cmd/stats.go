package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"deliberate/internal/attempt"
	"deliberate/internal/patterns"
	"deliberate/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history and summary numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		history, err := svc.History(context.Background(), userID)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Println("No attempts yet. Start one with deliberate attempt start <problem>.")
			return nil
		}

		var finished, correct, gaveUp, timedOut int
		var totalSeconds int
		for _, a := range history {
			if !a.Status.Terminal() {
				continue
			}
			finished++
			if a.PatternCorrect {
				correct++
			}
			switch a.Status {
			case attempt.StatusGaveUp:
				gaveUp++
			case attempt.StatusTimedOut:
				timedOut++
			}
			if a.TotalTimeSeconds != nil {
				totalSeconds += *a.TotalTimeSeconds
			}
		}

		fmt.Println(theme.Title.Render("Summary"))
		fmt.Printf("  Attempts:        %d (%d finished)\n", len(history), finished)
		if finished > 0 {
			fmt.Printf("  Pattern correct: %d (%.0f%%)\n", correct,
				float64(correct)/float64(finished)*100)
			avg := time.Duration(totalSeconds/finished) * time.Second
			fmt.Printf("  Average time:    %s\n", avg)
		}
		if gaveUp+timedOut > 0 {
			fmt.Printf("  Abandoned:       %d gave up, %d timed out\n", gaveUp, timedOut)
		}

		fmt.Println()
		fmt.Println(theme.Title.Render("Recent Attempts"))
		fmt.Printf("  %-28s  %-22s  %-10s  %s\n", "Problem", "Pattern", "Status", "When")
		fmt.Println("  " + strings.Repeat("─", 76))

		shown := history
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		for _, a := range shown {
			status := string(a.Status)
			if a.Status == attempt.StatusSolved && !a.PatternCorrect {
				status = "solved*"
			}
			pattern := "-"
			if a.ChosenPattern != "" {
				pattern = patterns.DisplayName(a.ChosenPattern)
			}
			fmt.Printf("  %-28s  %-22s  %-10s  %s\n",
				truncate(a.Problem.Title(), 28),
				truncate(pattern, 22),
				status,
				a.StartedAt.Local().Format("Jan 2 15:04"),
			)
		}
		if limit > 0 && len(history) > limit {
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf("  ...and %d more", len(history)-limit)))
		}
		fmt.Println()
		fmt.Println(theme.Hint.Render("* finished, but the committed pattern did not hold up"))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 15, "Number of attempts to list")
}

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"deliberate/internal/attempt"
	"deliberate/internal/patterns"
	"deliberate/internal/problems"
	"deliberate/internal/reflection"
	"deliberate/internal/ui/theme"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Work through a problem attempt",
}

var attemptStartCmd = &cobra.Command{
	Use:   "start <problem-id>",
	Short: "Start a new attempt",
	Long: "Starts an attempt against a catalog problem, or any outside problem\n" +
		"with --external. One attempt at a time: finish or abandon the current\n" +
		"one before starting the next.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		external, _ := cmd.Flags().GetBool("external")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}

		ref := problems.CatalogRef(args[0])
		if external {
			ref = problems.ExternalRef(args[0])
		}

		svc := newService(cmd, s, false)
		ctx := context.Background()

		a, err := svc.Start(ctx, userID, ref)
		if err != nil {
			return err
		}
		minimum, err := svc.Minimum(ctx, userID)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Attempt started: ") + ref.Title())
		if ref.Kind == problems.RefCatalog {
			if p, err := problems.Get(ref.ID); err == nil {
				fmt.Println(theme.Subtitle.Render(fmt.Sprintf("Difficulty: %s", p.Difficulty)))
			}
		}
		fmt.Println()
		fmt.Printf("Think before you code: spend at least %s reading the problem,\n",
			theme.Highlight.Render(fmt.Sprintf("%ds", minimum)))
		fmt.Println("then commit to a pattern with " + theme.Hint.Render("deliberate attempt commit"))
		fmt.Println(theme.Subtitle.Render("Attempt ID: " + a.ID))
		return nil
	},
}

var attemptCommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit to a pattern after the thinking phase",
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

		a, err := svc.Active(ctx, userID)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("no attempt in progress; run deliberate attempt start first")
		}

		seconds, _ := cmd.Flags().GetInt("seconds")
		if seconds == 0 {
			seconds = int(time.Since(a.StartedAt).Seconds())
		}

		sub := attempt.ColdStartSubmission{
			ThinkingDurationSeconds: seconds,
		}
		sub.ChosenPattern, _ = cmd.Flags().GetString("pattern")
		sub.SecondaryPattern, _ = cmd.Flags().GetString("secondary")
		sub.PrimaryVsSecondaryReason, _ = cmd.Flags().GetString("why-primary")
		sub.RejectedPattern, _ = cmd.Flags().GetString("rejected")
		sub.RejectionReason, _ = cmd.Flags().GetString("why-rejected")
		sub.IdentifiedSignals, _ = cmd.Flags().GetStringArray("signal")
		if c, _ := cmd.Flags().GetString("confidence"); c != "" {
			sub.Confidence = attempt.Confidence(c)
		}

		res, err := svc.SubmitColdStart(ctx, a.ID, sub)
		if err != nil {
			return err
		}

		fmt.Println(theme.Good.Render("Committed: ") + patterns.DisplayName(sub.ChosenPattern))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
			"Thinking time %ds (minimum was %ds)", seconds, res.MinimumSeconds)))
		if res.Nudge != "" {
			fmt.Println()
			fmt.Println(theme.Nudge.Render(res.Nudge))
		}
		fmt.Println()
		fmt.Println("Now code it. Report the outcome with " + theme.Hint.Render("deliberate attempt finish"))
		return nil
	},
}

var attemptFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the attempt and report how the chosen pattern held up",
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

		svc := newService(cmd, s, true)
		ctx := context.Background()

		a, err := svc.Active(ctx, userID)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("no attempt in progress")
		}

		res := attempt.Result{}
		outcome, _ := cmd.Flags().GetString("outcome")
		res.Outcome = attempt.Outcome(outcome)
		if f, _ := cmd.Flags().GetString("failure"); f != "" {
			res.FirstFailure = attempt.FirstFailure(f)
		}
		if c, _ := cmd.Flags().GetString("confidence"); c != "" {
			res.Confidence = attempt.Confidence(c)
		}
		res.SwitchedApproach, _ = cmd.Flags().GetBool("switched")
		res.SwitchReason, _ = cmd.Flags().GetString("switch-reason")

		done, review, err := svc.Complete(ctx, a.ID, res)
		if err != nil {
			return err
		}

		printOutcome(done)
		if review != nil {
			printReview(review)
		}
		return nil
	},
}

var attemptGiveupCmd = &cobra.Command{
	Use:   "giveup",
	Short: "Abandon the current attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return endAttempt(cmd, "Attempt abandoned.", func(ctx context.Context, svc attemptEnder, id string) (*attempt.Attempt, error) {
			return svc.GiveUp(ctx, id)
		})
	},
}

var attemptTimeoutCmd = &cobra.Command{
	Use:   "timeout",
	Short: "End the current attempt as timed out",
	RunE: func(cmd *cobra.Command, args []string) error {
		return endAttempt(cmd, "Attempt timed out.", func(ctx context.Context, svc attemptEnder, id string) (*attempt.Attempt, error) {
			return svc.TimeOut(ctx, id)
		})
	},
}

var attemptShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current attempt",
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
		a, err := svc.Active(context.Background(), userID)
		if err != nil {
			return err
		}
		if a == nil {
			fmt.Println("No attempt in progress.")
			return nil
		}

		fmt.Println(theme.Title.Render(a.Problem.Title()))
		fmt.Println(theme.Label.Render("Status:   ") + string(a.Status))
		fmt.Println(theme.Label.Render("Started:  ") + a.StartedAt.Local().Format("2006-01-02 15:04"))
		fmt.Println(theme.Label.Render("Elapsed:  ") + time.Since(a.StartedAt).Round(time.Second).String())
		if cs := a.ColdStart; cs != nil {
			fmt.Println(theme.Label.Render("Pattern:  ") + patterns.DisplayName(cs.ChosenPattern))
			if len(cs.IdentifiedSignals) > 0 {
				fmt.Println(theme.Label.Render("Signals:  ") + strings.Join(cs.IdentifiedSignals, "; "))
			}
			fmt.Println(theme.Label.Render("Confidence: ") + string(cs.Confidence))
		}
		return nil
	},
}

// attemptEnder is the slice of the service the giveup/timeout commands need.
type attemptEnder interface {
	Active(ctx context.Context, userID string) (*attempt.Attempt, error)
	GiveUp(ctx context.Context, attemptID string) (*attempt.Attempt, error)
	TimeOut(ctx context.Context, attemptID string) (*attempt.Attempt, error)
}

func endAttempt(cmd *cobra.Command, doneMsg string, end func(context.Context, attemptEnder, string) (*attempt.Attempt, error)) error {
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

	a, err := svc.Active(ctx, userID)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("no attempt in progress")
	}

	done, err := end(ctx, svc, a.ID)
	if err != nil {
		return err
	}
	fmt.Println(doneMsg)
	if done.TotalTimeSeconds != nil {
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
			"Total time: %s", (time.Duration(*done.TotalTimeSeconds) * time.Second).String())))
	}
	return nil
}

func printOutcome(a *attempt.Attempt) {
	switch a.Outcome {
	case attempt.OutcomeWorked:
		fmt.Println(theme.Good.Render("Pattern held up."))
	case attempt.OutcomePartiallyWorked:
		fmt.Println(theme.Warn.Render("Pattern partially worked."))
	case attempt.OutcomeFailed:
		fmt.Println(theme.Bad.Render("Pattern failed."))
	}
	if a.TotalTimeSeconds != nil {
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
			"Total time: %s", (time.Duration(*a.TotalTimeSeconds) * time.Second).String())))
	}
	if correct, ok := problems.CorrectPattern(a.Problem); ok && !a.PatternCorrect {
		fmt.Println(theme.Subtitle.Render("Canonical pattern: " + patterns.DisplayName(correct)))
	}
}

func printReview(r *reflection.Reflection) {
	fmt.Println()
	fmt.Println(theme.Title.Render("Review"))
	fmt.Println(r.Feedback)
	if len(r.CorrectIdentifications) > 0 {
		fmt.Println()
		fmt.Println(theme.Good.Render("You spotted:"))
		for _, s := range r.CorrectIdentifications {
			fmt.Println("  - " + s)
		}
	}
	if len(r.MissedSignals) > 0 {
		fmt.Println()
		fmt.Println(theme.Bad.Render("You missed:"))
		for _, s := range r.MissedSignals {
			fmt.Println("  - " + s)
		}
	}
	if r.NextTimeAdvice != "" {
		fmt.Println()
		fmt.Println(theme.Label.Render("Next time: ") + r.NextTimeAdvice)
	}
	if r.PatternTips != "" {
		fmt.Println(theme.Label.Render("Recognition: ") + r.PatternTips)
	}
	if r.ConfidenceCalibration != "" {
		fmt.Println(theme.Label.Render("Calibration: ") + r.ConfidenceCalibration)
	}
}

func init() {
	attemptStartCmd.Flags().Bool("external", false, "Problem is outside the built-in catalog")

	attemptCommitCmd.Flags().String("pattern", "", "Pattern you are committing to (required)")
	attemptCommitCmd.Flags().Int("seconds", 0, "Thinking time in seconds (defaults to time since start)")
	attemptCommitCmd.Flags().StringArray("signal", nil, "Signal you identified in the problem (repeatable)")
	attemptCommitCmd.Flags().String("secondary", "", "Pattern you considered second")
	attemptCommitCmd.Flags().String("why-primary", "", "Why the primary beats the secondary")
	attemptCommitCmd.Flags().String("rejected", "", "Pattern you explicitly ruled out")
	attemptCommitCmd.Flags().String("why-rejected", "", "Why you ruled it out")
	attemptCommitCmd.Flags().String("confidence", "", "guessing, uncertain, confident, or very_confident")
	_ = attemptCommitCmd.MarkFlagRequired("pattern")

	attemptFinishCmd.Flags().String("outcome", "", "worked, partially_worked, or failed (required)")
	attemptFinishCmd.Flags().String("failure", "", "First failure mode: wrong_invariant, edge_case, time_complexity, implementation_bug, space_complexity, other")
	attemptFinishCmd.Flags().Bool("switched", false, "You abandoned the committed pattern mid-attempt")
	attemptFinishCmd.Flags().String("switch-reason", "", "What made you switch")
	attemptFinishCmd.Flags().String("confidence", "", "Revised confidence in the pattern choice")
	_ = attemptFinishCmd.MarkFlagRequired("outcome")

	attemptCmd.AddCommand(attemptStartCmd)
	attemptCmd.AddCommand(attemptCommitCmd)
	attemptCmd.AddCommand(attemptFinishCmd)
	attemptCmd.AddCommand(attemptGiveupCmd)
	attemptCmd.AddCommand(attemptTimeoutCmd)
	attemptCmd.AddCommand(attemptShowCmd)
}
